// SPDX-License-Identifier: GPL-3.0-only

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Webhook outcome labels recorded per ingestion attempt.
const (
	ResultCreated          = "created"
	ResultDuplicate        = "duplicate"
	ResultInvalidSignature = "invalid_signature"
	ResultValidationError  = "validation_error"
)

// Metrics owns a private prometheus registry so every instance (one
// per process, one per test) starts from zero and exposes only its own
// series. All collectors are increment-only and safe for concurrent
// use.
type Metrics struct {
	registry *prometheus.Registry
	enabled  bool

	HTTPRequestsTotal    *prometheus.CounterVec
	WebhookRequestsTotal *prometheus.CounterVec
	RequestLatencyMs     *prometheus.HistogramVec
}

func New(enabled bool) *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		enabled:  enabled,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "status"},
		),
		WebhookRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_requests_total",
				Help: "Total number of webhook requests",
			},
			[]string{"result"},
		),
		RequestLatencyMs: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "request_latency_ms",
				Help:    "Request latency in milliseconds",
				Buckets: []float64{100, 500, 1000, 2500, 5000, 10000},
			},
			[]string{"path"},
		),
	}
	registry.MustRegister(m.HTTPRequestsTotal, m.WebhookRequestsTotal, m.RequestLatencyMs)
	return m
}

func (m *Metrics) Enabled() bool {
	return m.enabled
}

// RecordHTTPRequest counts a finished request and observes its
// latency, keyed by the registered route path.
func (m *Metrics) RecordHTTPRequest(path, status string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(path, status).Inc()
	m.RequestLatencyMs.WithLabelValues(path).Observe(durationMs)
}

// RecordWebhookRequest counts one ingestion attempt under its outcome
// label.
func (m *Metrics) RecordWebhookRequest(result string) {
	if !m.enabled {
		return
	}
	m.WebhookRequestsTotal.WithLabelValues(result).Inc()
}

// Handler returns the prometheus text exposition endpoint for this
// instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
