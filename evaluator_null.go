package triarb

// NullEvaluator implements Evaluator by doing nothing but the mandatory
// store write: it never reports an opportunity. It is useful as a
// drop-in placeholder when only quote-store population is wanted (e.g.
// a capture-only run) and as a copy/paste starting point for new
// Evaluator implementations.
type NullEvaluator struct {
	store *QuoteStore
}

// NewNullEvaluator builds an evaluator that records updates but never
// scans for opportunities.
func NewNullEvaluator(store *QuoteStore) *NullEvaluator {
	return &NullEvaluator{store: store}
}

func (e *NullEvaluator) ProcessUpdate(u TopOfBookUpdate) (Opportunity, bool) {
	e.store.Put(u)
	return Opportunity{}, false
}
