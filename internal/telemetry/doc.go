// Package telemetry provides Prometheus metrics for HTTP transport adapter requests and connections.
package telemetry
