// Package service provides the service registry for provider management.
//
// The registry maintains a catalog of available service providers and
// handles service discovery, tool execution, and relevance scoring.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(appsProvider)
//	services := registry.Discover("launch app", 5)
//	result, err := registry.Execute(ctx, "apps.list", params, appCtx)
package service
