package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the gateway.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	UpstreamRequests    *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
	WorkingSetSize      *prometheus.GaugeVec
}

// New registers and returns the gateway collectors.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UpstreamRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Requests issued to the booking backend.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		UpstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Booking backend request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		WorkingSetSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "working_set_entities",
			Help:        "Number of entities held in the in-memory working set.",
			ConstLabels: constLabels,
		}, []string{"collection"}),
	}
}

// ObserveUpstream records one booking backend call.
func (m *Metrics) ObserveUpstream(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(operation, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(operation).Observe(seconds)
}

// SetWorkingSetSize records the size of one working-set collection.
func (m *Metrics) SetWorkingSetSize(collection string, n int) {
	if m == nil {
		return
	}
	m.WorkingSetSize.WithLabelValues(collection).Set(float64(n))
}
