package triarb

// NaiveEvaluator scans the entire universe on every update, in
// construction order, and returns the first profitable path it finds.
// It keeps no index and is the reference implementation the other
// variants are checked against (spec.md §4.D, variant N).
type NaiveEvaluator struct {
	universe *Universe
	store    *QuoteStore
}

// NewNaiveEvaluator builds the N variant over universe and store. Both
// are shared with every other evaluator constructed against the same
// pipeline; NaiveEvaluator never mutates universe.
func NewNaiveEvaluator(universe *Universe, store *QuoteStore) *NaiveEvaluator {
	return &NaiveEvaluator{universe: universe, store: store}
}

func (e *NaiveEvaluator) ProcessUpdate(u TopOfBookUpdate) (Opportunity, bool) {
	e.store.Put(u)

	for _, path := range e.universe.Paths {
		amount, ok := simulate(path, e.store)
		if !ok || !profitable(amount) {
			continue
		}
		return opportunityFor(path, amount, u), true
	}
	return Opportunity{}, false
}
