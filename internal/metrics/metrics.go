// Package metrics exposes Prometheus instrumentation for cmd/flscapesrv.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus collector the characterization service
// reports.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec

	CharacterizeDuration prometheus.Histogram
	OutputVectorLength   prometheus.Histogram

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers every collector against the default registry.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flscape_requests_total",
				Help: "Total number of requests by route and status",
			},
			[]string{"route", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flscape_request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"route"},
		),
		RequestErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flscape_request_errors_total",
				Help: "Total number of request errors by route and error type",
			},
			[]string{"route", "error_type"},
		),
		CharacterizeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flscape_characterize_duration_seconds",
				Help:    "Time spent inside Characterize, excluding request decoding",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
		OutputVectorLength: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flscape_output_vector_length",
				Help:    "Length of the flattened characteristic vector returned",
				Buckets: []float64{50, 75, 100, 150, 200, 300, 500},
			},
		),
		CacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flscape_singleflight_hits_total",
				Help: "Total number of requests served by de-duplicating an in-flight call",
			},
		),
		CacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flscape_singleflight_misses_total",
				Help: "Total number of requests that executed Characterize themselves",
			},
		),
	}
}

// RecordRequest records a completed request with its route, status, and
// duration.
func (m *Metrics) RecordRequest(route, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(route, status).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordError records a request that failed with the given error class.
func (m *Metrics) RecordError(route, errorType string) {
	m.RequestErrors.WithLabelValues(route, errorType).Inc()
}

// RecordCharacterize records one Characterize call's duration and the
// length of the vector it produced.
func (m *Metrics) RecordCharacterize(duration time.Duration, outputLen int) {
	m.CharacterizeDuration.Observe(duration.Seconds())
	m.OutputVectorLength.Observe(float64(outputLen))
}

// RecordDedup records whether a request was served from an in-flight
// singleflight call or executed its own Characterize.
func (m *Metrics) RecordDedup(shared bool) {
	if shared {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}
