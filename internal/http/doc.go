// Package http provides HTTP handlers and routing for the apphub REST API.
//
// This package implements all HTTP endpoints using the Gin framework.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Apps: /apps, /apps/launch
//   - Metrics: /metrics
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, cache, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
