// Package-level Prometheus metrics for observability.
//
// Exposes the counters and histograms named in spec.md §7 (parse failures
// and metadata skips are also logged at Warn where they occur):
//   - triarb_parse_errors_total{kind}     – parse failures by ParseErrorKind
//   - triarb_metadata_skipped_total       – symbols dropped by ValidSymbols
//   - triarb_opportunities_total{variant} – profitable cycles found, by evaluator variant
//   - triarb_evaluate_seconds{variant}    – process_update latency, by evaluator variant
//
// Registered in init() on the default registerer; served by whichever
// HTTP handler a cmd/ binary chooses to mount at /metrics.
package triarb

import "github.com/prometheus/client_golang/prometheus"

var (
	metricParseErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triarb_parse_errors_total",
			Help: "Parser failures by error kind.",
		},
		[]string{"kind"},
	)

	metricMetadataSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "triarb_metadata_skipped_total",
			Help: "Exchange-metadata symbols dropped as malformed or non-trading.",
		},
	)

	metricOpportunities = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triarb_opportunities_total",
			Help: "Profitable cycles found, by evaluator variant.",
		},
		[]string{"variant"},
	)

	metricEvaluateSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triarb_evaluate_seconds",
			Help:    "process_update latency by evaluator variant.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(metricParseErrors, metricMetadataSkipped)
	prometheus.MustRegister(metricOpportunities, metricEvaluateSeconds)
}

// IncParseError records a parse failure of the given kind.
func IncParseError(kind ParseErrorKind) { metricParseErrors.WithLabelValues(kind.String()).Inc() }

// IncMetadataSkipped records one symbol dropped during metadata validation.
func IncMetadataSkipped() { metricMetadataSkipped.Inc() }

// IncOpportunity records one profitable cycle found by variant.
func IncOpportunity(variant string) { metricOpportunities.WithLabelValues(variant).Inc() }

// ObserveEvaluateSeconds records one process_update call's wall time for variant.
func ObserveEvaluateSeconds(variant string, seconds float64) {
	metricEvaluateSeconds.WithLabelValues(variant).Observe(seconds)
}
