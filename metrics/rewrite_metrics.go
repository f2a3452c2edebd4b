package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Request outcome labels.
const (
	ResultRewritten   = "rewritten"
	ResultUnchanged   = "unchanged"
	ResultPassThrough = "pass_through"
)

// Rewrite metrics.
// Labels:
//   - result: "rewritten", "unchanged" or "pass_through" (no operations configured)
//   - status: "success" or "failure" for configuration loads
var (
	// RequestsTotal counts requests seen by DecodeHeaders.
	RequestsTotal *prometheus.CounterVec

	// RewriteDuration tracks time spent rewriting the query string.
	RewriteDuration prometheus.Histogram

	// ConfigLoadsTotal counts configuration decodes.
	ConfigLoadsTotal *prometheus.CounterVec

	// ConfiguredOperations is the number of operations in the last loaded configuration.
	ConfiguredOperations prometheus.Gauge
)

// RegisterRewriteMetrics registers the rewrite metrics with registry.
func RegisterRewriteMetrics(registry *prometheus.Registry) {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envoy_query_rewrite_requests_total",
			Help: "Total number of requests processed by the query rewrite filter",
		},
		[]string{"result"},
	)

	RewriteDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "envoy_query_rewrite_duration_seconds",
			Help:    "Time spent rewriting request query strings in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	ConfigLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envoy_query_rewrite_config_loads_total",
			Help: "Total number of query rewrite configuration loads",
		},
		[]string{"status"},
	)

	ConfiguredOperations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "envoy_query_rewrite_configured_operations",
			Help: "Number of operations in the most recently loaded configuration",
		},
	)

	registry.MustRegister(RequestsTotal)
	registry.MustRegister(RewriteDuration)
	registry.MustRegister(ConfigLoadsTotal)
	registry.MustRegister(ConfiguredOperations)
}

// RecordRequest records the outcome of one request.
// Safe to call when the metrics server is disabled.
func RecordRequest(result string, durationSeconds float64) {
	if RequestsTotal == nil || RewriteDuration == nil {
		return
	}

	RequestsTotal.WithLabelValues(result).Inc()
	if result != ResultPassThrough {
		RewriteDuration.Observe(durationSeconds)
	}
}

// RecordConfigLoad records a configuration decode.
func RecordConfigLoad(ok bool, operations int) {
	if ConfigLoadsTotal == nil || ConfiguredOperations == nil {
		return
	}

	status := "success"
	if !ok {
		status = "failure"
	}
	ConfigLoadsTotal.WithLabelValues(status).Inc()
	ConfiguredOperations.Set(float64(operations))
}
