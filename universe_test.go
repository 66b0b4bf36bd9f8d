package triarb_test

import (
	triarb "github.com/arbflow/triarb-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func threeSymbolTable() *triarb.SymbolTable {
	return triarb.NewSymbolTable([]triarb.SymbolInfo{
		{Symbol: "BTCUSDT", BaseAsset: "BTC", QuoteAsset: "USDT", Status: "TRADING"},
		{Symbol: "ETHUSDT", BaseAsset: "ETH", QuoteAsset: "USDT", Status: "TRADING"},
		{Symbol: "ETHBTC", BaseAsset: "ETH", QuoteAsset: "BTC", Status: "TRADING"},
	})
}

func assetRoute(path *triarb.PricingPath) []triarb.Asset {
	return []triarb.Asset{
		path.Legs[0].InAsset, path.Legs[0].OutAsset,
		path.Legs[1].OutAsset, path.Legs[2].OutAsset,
	}
}

var _ = Describe("BuildUniverse", func() {
	Context("a three-symbol triangle", func() {
		It("produces exactly two cyclic paths", func() {
			universe := triarb.BuildUniverse("USDT", threeSymbolTable())
			Expect(universe.Paths).To(HaveLen(2))
		})

		It("retains both traversal directions", func() {
			universe := triarb.BuildUniverse("USDT", threeSymbolTable())
			routes := make([][]triarb.Asset, 0, len(universe.Paths))
			for _, p := range universe.Paths {
				routes = append(routes, assetRoute(p))
			}
			Expect(routes).To(ContainElement([]triarb.Asset{"USDT", "BTC", "ETH", "USDT"}))
			Expect(routes).To(ContainElement([]triarb.Asset{"USDT", "ETH", "BTC", "USDT"}))
		})

		It("assigns a unique, zero-based, stable Index to every path", func() {
			universe := triarb.BuildUniverse("USDT", threeSymbolTable())
			seen := make(map[int]bool)
			for i, p := range universe.Paths {
				Expect(p.Index).To(Equal(i))
				seen[p.Index] = true
			}
			Expect(seen).To(HaveLen(len(universe.Paths)))
		})

		It("never reuses a symbol twice within the same path", func() {
			universe := triarb.BuildUniverse("USDT", threeSymbolTable())
			for _, p := range universe.Paths {
				symbols := p.Symbols()
				Expect(symbols[0]).NotTo(Equal(symbols[1]))
				Expect(symbols[1]).NotTo(Equal(symbols[2]))
				Expect(symbols[0]).NotTo(Equal(symbols[2]))
			}
		})
	})

	Context("an empty symbol table", func() {
		It("produces an empty universe, not an error", func() {
			universe := triarb.BuildUniverse("USDT", triarb.NewSymbolTable(nil))
			Expect(universe.Paths).To(BeEmpty())
		})
	})

	Context("a home asset with no adjacent symbols", func() {
		It("produces an empty universe", func() {
			universe := triarb.BuildUniverse("JPY", threeSymbolTable())
			Expect(universe.Paths).To(BeEmpty())
		})
	})
})

var _ = Describe("SymbolIndex", func() {
	It("lists each path under all three of its symbols", func() {
		universe := triarb.BuildUniverse("USDT", threeSymbolTable())
		index := triarb.BuildSymbolIndex(universe)
		for _, p := range universe.Paths {
			for _, symbol := range p.Symbols() {
				Expect(index.PathsFor(symbol)).To(ContainElement(p))
			}
		}
	})

	It("returns an empty candidate list for a symbol outside the universe", func() {
		universe := triarb.BuildUniverse("USDT", threeSymbolTable())
		index := triarb.BuildSymbolIndex(universe)
		Expect(index.PathsFor("DOGEUSDT")).To(BeEmpty())
	})

	It("preserves universe construction order within a bucket", func() {
		universe := triarb.BuildUniverse("USDT", threeSymbolTable())
		index := triarb.BuildSymbolIndex(universe)
		for _, symbol := range []triarb.Symbol{"BTCUSDT", "ETHUSDT", "ETHBTC"} {
			paths := index.PathsFor(symbol)
			for i := 1; i < len(paths); i++ {
				Expect(paths[i-1].Index).To(BeNumerically("<", paths[i].Index))
			}
		}
	})
})
