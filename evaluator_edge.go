package triarb

// EdgeEvaluator narrows the candidate set to the paths touching the
// triggering update's symbol, via a precomputed reverse index, and
// returns the first profitable one in index order — which follows
// universe construction order, making this variant's "first" result
// deterministic (spec.md §4.D, variant E).
type EdgeEvaluator struct {
	index *SymbolIndex
	store *QuoteStore
}

// NewEdgeEvaluator builds the E variant over index and store.
func NewEdgeEvaluator(index *SymbolIndex, store *QuoteStore) *EdgeEvaluator {
	return &EdgeEvaluator{index: index, store: store}
}

func (e *EdgeEvaluator) ProcessUpdate(u TopOfBookUpdate) (Opportunity, bool) {
	e.store.Put(u)

	for _, path := range e.index.PathsFor(u.Symbol) {
		amount, ok := simulate(path, e.store)
		if !ok || !profitable(amount) {
			continue
		}
		return opportunityFor(path, amount, u), true
	}
	return Opportunity{}, false
}
