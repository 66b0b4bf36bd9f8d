package triarb

import "time"

// MeteredEvaluator wraps an Evaluator with the Prometheus observability
// spec.md §7 requires: opportunities found and process_update latency,
// both labeled by variant. It adds no behavior of its own — Evaluator
// selection and semantics are entirely the wrapped variant's.
type MeteredEvaluator struct {
	inner   Evaluator
	variant string
}

// NewMeteredEvaluator wraps inner, labeling its metrics with variant
// (e.g. "naive", "edge", "rayon_first", "rayon_best").
func NewMeteredEvaluator(inner Evaluator, variant string) *MeteredEvaluator {
	return &MeteredEvaluator{inner: inner, variant: variant}
}

func (e *MeteredEvaluator) ProcessUpdate(u TopOfBookUpdate) (Opportunity, bool) {
	start := time.Now()
	opp, ok := e.inner.ProcessUpdate(u)
	ObserveEvaluateSeconds(e.variant, time.Since(start).Seconds())
	if ok {
		IncOpportunity(e.variant)
	}
	return opp, ok
}
