// Package main is the entry point for the apphub service.
//
// The service maintains a reconciled inventory of installed applications
// gathered from the Windows registry and Start Menu, and resolves launch
// requests against it.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
