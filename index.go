package triarb

// SymbolIndex is a read-only, build-once mapping from Symbol to every
// PricingPath that touches it, used by the symbol-indexed evaluator
// variants (E, R-first, R-best) to avoid scanning the full universe on
// every update. Each path is listed under all three of its symbols;
// paths are shared by pointer so no path is triplicated in memory
// (spec.md §4.D, §9).
type SymbolIndex struct {
	bySymbol map[Symbol][]*PricingPath
}

// BuildSymbolIndex constructs a SymbolIndex over universe's paths. Each
// bucket preserves universe construction order, which EdgeEvaluator
// relies on for its deterministic "first profitable" semantics.
func BuildSymbolIndex(universe *Universe) *SymbolIndex {
	idx := &SymbolIndex{bySymbol: make(map[Symbol][]*PricingPath)}
	for _, path := range universe.Paths {
		for _, symbol := range path.Symbols() {
			idx.bySymbol[symbol] = append(idx.bySymbol[symbol], path)
		}
	}
	return idx
}

// PathsFor returns the paths touching symbol, in universe construction
// order. A symbol absent from the universe returns a nil (empty) slice —
// candidate scanning is then a no-op without ever touching the full
// path list (spec.md §8, scenario 4).
func (idx *SymbolIndex) PathsFor(symbol Symbol) []*PricingPath {
	return idx.bySymbol[symbol]
}
