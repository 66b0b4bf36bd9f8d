package triarb

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// ParallelEvaluator fans candidate paths for the triggering symbol out
// across a worker pool, implementing both R-first (first profitable
// match wins, may stop early) and R-best (deterministic max-by-amount
// reduce) depending on mode (spec.md §4.D, variants R-first/R-best).
type ParallelEvaluator struct {
	index   *SymbolIndex
	store   *QuoteStore
	mode    RayonReturnMode
	workers int
}

// NewParallelEvaluator builds an R-variant over index and store. workers
// bounds the pool size; zero selects runtime.GOMAXPROCS(0) (spec.md §4.D
// "Construction").
func NewParallelEvaluator(index *SymbolIndex, store *QuoteStore, mode RayonReturnMode, workers int) *ParallelEvaluator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &ParallelEvaluator{index: index, store: store, mode: mode, workers: workers}
}

func (e *ParallelEvaluator) ProcessUpdate(u TopOfBookUpdate) (Opportunity, bool) {
	e.store.Put(u)

	paths := e.index.PathsFor(u.Symbol)
	if len(paths) == 0 {
		return Opportunity{}, false
	}

	if e.mode == RayonReturnFirst {
		return e.processFirst(u, paths)
	}
	return e.processBest(u, paths)
}

// processFirst races the candidate paths against each other and returns
// whichever profitable result is found first. Which path that is varies
// run to run by design (spec.md §4.D "Ordering and tie-breaks"); callers
// must not assert on path identity, only on profitability.
func (e *ParallelEvaluator) processFirst(u TopOfBookUpdate, paths []*PricingPath) (Opportunity, bool) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	found := make(chan Opportunity, 1)
	p := pool.New().WithMaxGoroutines(e.workers).WithContext(ctx)

	for _, path := range paths {
		path := path
		p.Go(func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			amount, ok := simulate(path, e.store)
			if !ok || !profitable(amount) {
				return nil
			}
			select {
			case found <- opportunityFor(path, amount, u):
				cancel()
			default:
			}
			return nil
		})
	}
	_ = p.Wait()

	select {
	case opp := <-found:
		return opp, true
	default:
		return Opportunity{}, false
	}
}

// processBest evaluates every candidate path and returns the profitable
// one with the maximum amount, breaking ties deterministically on the
// smallest PricingPath.Index regardless of the order results arrive in
// from the pool (spec.md §4.D "R-best's tie-break is deterministic").
func (e *ParallelEvaluator) processBest(u TopOfBookUpdate, paths []*PricingPath) (Opportunity, bool) {
	p := pool.NewWithResults[*Opportunity]().WithMaxGoroutines(e.workers)

	for _, path := range paths {
		path := path
		p.Go(func() *Opportunity {
			amount, ok := simulate(path, e.store)
			if !ok || !profitable(amount) {
				return nil
			}
			opp := opportunityFor(path, amount, u)
			return &opp
		})
	}
	results := p.Wait()

	var best *Opportunity
	for _, r := range results {
		if r == nil {
			continue
		}
		switch {
		case best == nil:
			best = r
		case r.FinalAmount > best.FinalAmount:
			best = r
		case r.FinalAmount == best.FinalAmount && r.Path.Index < best.Path.Index:
			best = r
		}
	}
	if best == nil {
		return Opportunity{}, false
	}
	return *best, true
}
