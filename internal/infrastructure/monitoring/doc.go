/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the backend
service, tracking HTTP requests, transport events, attach flows, and system
metrics.

# Features

- HTTP request metrics (latency, throughput, size)
- Transport event counters (stream/process lifecycle)
- Discovery gauges (streams, live, inspectable, launches)
- Attach metrics (attempts, duration histogram, recent latency window)
- gRPC call metrics (latency, status codes)
- Payload and journal counters
- WebSocket connection metrics
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.SetProcessesInspectable(5)
	metrics.RecordTransportEvent("process_started")

	// Time operations
	timer := monitoring.NewTimer(metrics, "transport", "AttachAgent")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
