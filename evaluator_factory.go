package triarb

// NewEvaluator builds the Evaluator selected by cfg, wired to universe,
// its symbol index, and the shared store, wrapped with Prometheus
// instrumentation (spec.md §6 "evaluator" / §4.D "Pluggable evaluator
// contract"). cfg must already have passed Validate.
func NewEvaluator(cfg Config, universe *Universe, index *SymbolIndex, store *QuoteStore) Evaluator {
	switch cfg.Evaluator {
	case EvaluatorNaive:
		return NewMeteredEvaluator(NewNaiveEvaluator(universe, store), "naive")
	case EvaluatorRayon:
		variant := "rayon_best"
		if cfg.RayonOnUpdateReturn == RayonReturnFirst {
			variant = "rayon_first"
		}
		return NewMeteredEvaluator(
			NewParallelEvaluator(index, store, cfg.RayonOnUpdateReturn, cfg.RayonWorkers),
			variant,
		)
	case EvaluatorEdge:
		fallthrough
	default:
		return NewMeteredEvaluator(NewEdgeEvaluator(index, store), "edge")
	}
}
