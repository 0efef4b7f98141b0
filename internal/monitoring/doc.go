/*
Package monitoring provides Prometheus metrics collection for the service.

# Overview

Tracks HTTP requests, tool dispatches, inventory rebuilds, and launch
outcomes.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	// Inventory cache hook
	cache := inventory.New(inventory.Config{OnRebuild: metrics.RecordRebuild})

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
