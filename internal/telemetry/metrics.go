package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Connection kinds used as the "kind" label of ConnectionsTotal.
const (
	ConnectionCreated = "created"
	ConnectionReused  = "reused"
	ConnectionClosed  = "closed"
)

// Metrics holds all Prometheus metrics for the adapter.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDurationMs  *prometheus.HistogramVec
	BytesSentTotal     prometheus.Counter
	BytesReceivedTotal prometheus.Counter
	ConnectionsTotal   *prometheus.CounterVec
}

// RequestLabels holds the values recorded for one executed request.
type RequestLabels struct {
	Method        string
	Result        string
	DurationMs    float64
	BytesSent     int
	BytesReceived int
}

// NewMetrics creates all metrics and registers them with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "httpapi_requests_total",
			Help: "Total number of executed requests by method and result.",
		}, []string{"method", "result"}),

		RequestDurationMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "httpapi_request_duration_ms",
			Help:    "Request duration in milliseconds, from request start to body read.",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
		}, []string{"method"}),

		BytesSentTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "httpapi_bytes_sent_total",
			Help: "Total request body bytes accepted by the client.",
		}),

		BytesReceivedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "httpapi_bytes_received_total",
			Help: "Total response body bytes read.",
		}),

		ConnectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "httpapi_connections_total",
			Help: "Connection lifecycle events by kind (created, reused, closed).",
		}, []string{"kind"}),
	}
}

// RecordRequest records metrics for an executed request.
func (m *Metrics) RecordRequest(labels RequestLabels) {
	if m == nil {
		return
	}

	m.RequestsTotal.WithLabelValues(labels.Method, labels.Result).Inc()
	m.RequestDurationMs.WithLabelValues(labels.Method).Observe(labels.DurationMs)

	if labels.BytesSent > 0 {
		m.BytesSentTotal.Add(float64(labels.BytesSent))
	}

	if labels.BytesReceived > 0 {
		m.BytesReceivedTotal.Add(float64(labels.BytesReceived))
	}
}

// RecordConnection records a connection lifecycle event.
func (m *Metrics) RecordConnection(kind string) {
	if m == nil {
		return
	}

	m.ConnectionsTotal.WithLabelValues(kind).Inc()
}
