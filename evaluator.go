package triarb

// Evaluator owns a shared quote store and a pre-built universe (or
// symbol index over one) and decides, on every update, whether any
// three-leg cycle is currently profitable. Implementations are
// effectively stateless beyond the store and their own immutable index —
// there is no lifecycle beyond construction (spec.md §4.D).
type Evaluator interface {
	ProcessUpdate(u TopOfBookUpdate) (Opportunity, bool)
}

// simulate prices path against store starting from a notional 1.0
// home-asset unit, legs in order. It returns ok=false without error if
// any leg's symbol has no quote in the store yet — that is a routine,
// non-error outcome, not a fault (spec.md §4.D "missing data").
//
// The three leg reads are not a single atomic snapshot: amount may be
// computed from quotes that were each live at a different instant. That
// is acceptable per spec.md §4.D; it is never fabricated.
func simulate(path *PricingPath, store *QuoteStore) (amount float64, ok bool) {
	amount = 1.0
	for _, leg := range path.Legs {
		q, present := store.Get(leg.Symbol)
		if !present {
			return 0, false
		}
		if leg.Side == Side_Ask {
			amount /= q.BestAskPrice
		} else {
			amount *= q.BestBidPrice
		}
	}
	return amount, true
}

// profitable reports whether amount clears the strict profitability
// threshold. Ties at exactly 1.0 are not profitable.
func profitable(amount float64) bool {
	return amount > 1.0
}

func opportunityFor(path *PricingPath, amount float64, trigger TopOfBookUpdate) Opportunity {
	return Opportunity{
		Path:            path,
		FinalAmount:     amount,
		TriggerSymbol:   trigger.Symbol,
		TriggerUpdateID: trigger.UpdateID,
	}
}
