package triarb

// edge is one directed conversion realized by a single trading symbol.
type edge struct {
	to     Asset
	symbol Symbol
	side   Side
}

// Universe is the full precomputed set of three-leg pricing paths for a
// given home asset and exchange-metadata snapshot. It is built once at
// startup and never mutated; paths are shared by pointer so the same
// *PricingPath can be referenced from multiple SymbolIndex buckets
// without duplicating its storage (spec.md §3, §9).
type Universe struct {
	Home  Asset
	Paths []*PricingPath
}

// BuildUniverse enumerates every valid home->X->Y->home cycle over the
// trading symbols in table, annotating each leg's side per spec.md §3,
// and returns them in a stable, deterministic construction order. An
// empty result is legal: it simply means no three-leg cycle exists for
// home under the given metadata.
//
// Construction is O(E·d²) where d is the maximum asset degree in the
// graph; it runs once at startup and is never on the evaluation hot path.
func BuildUniverse(home Asset, table *SymbolTable) *Universe {
	adjacency := make(map[Asset][]edge)
	for _, symbol := range table.Symbols() {
		base, quote, ok := table.Lookup(symbol)
		if !ok {
			continue
		}
		// Selling base for quote: base -> quote, consuming the bid.
		adjacency[base] = append(adjacency[base], edge{to: quote, symbol: symbol, side: Side_Bid})
		// Buying base with quote: quote -> base, consuming the ask.
		adjacency[quote] = append(adjacency[quote], edge{to: base, symbol: symbol, side: Side_Ask})
	}

	// Stable ordering of adjacency buckets: table.Symbols() has no fixed
	// order, so every per-asset bucket is sorted by (symbol, side) for
	// full determinism.
	sortEdges(adjacency)

	seen := make(map[[3]Leg]bool)
	var paths []*PricingPath

	for _, e1 := range adjacency[home] {
		x := e1.to
		if x == home {
			continue
		}
		for _, e2 := range adjacency[x] {
			y := e2.to
			if y == home || y == x {
				continue
			}
			if e2.symbol == e1.symbol {
				continue
			}
			for _, e3 := range adjacency[y] {
				if e3.to != home {
					continue
				}
				if e3.symbol == e1.symbol || e3.symbol == e2.symbol {
					continue
				}
				legs := [3]Leg{
					{Symbol: e1.symbol, Side: e1.side, InAsset: home, OutAsset: x},
					{Symbol: e2.symbol, Side: e2.side, InAsset: x, OutAsset: y},
					{Symbol: e3.symbol, Side: e3.side, InAsset: y, OutAsset: home},
				}
				if seen[legs] {
					continue
				}
				seen[legs] = true
				paths = append(paths, &PricingPath{
					Start: home,
					Legs:  legs,
					Index: len(paths),
				})
			}
		}
	}

	return &Universe{Home: home, Paths: paths}
}

// sortEdges sorts each adjacency bucket by (symbol, side) so that
// BuildUniverse's output order depends only on the symbol set, not on
// map/slice iteration order.
func sortEdges(adjacency map[Asset][]edge) {
	for asset, edges := range adjacency {
		edges := edges
		// insertion sort: buckets are small (bounded by asset degree)
		for i := 1; i < len(edges); i++ {
			for j := i; j > 0 && edgeLess(edges[j], edges[j-1]); j-- {
				edges[j], edges[j-1] = edges[j-1], edges[j]
			}
		}
		adjacency[asset] = edges
	}
}

func edgeLess(a, b edge) bool {
	if a.symbol != b.symbol {
		return a.symbol < b.symbol
	}
	return a.side < b.side
}
