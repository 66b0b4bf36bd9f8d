package triarb_test

import (
	triarb "github.com/arbflow/triarb-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewEvaluator", func() {
	It("builds a working evaluator for every configured variant", func() {
		universe, index, store := newFixtures()
		for _, cfg := range []triarb.Config{
			{HomeAsset: "USDT", Evaluator: triarb.EvaluatorNaive},
			{HomeAsset: "USDT", Evaluator: triarb.EvaluatorEdge},
			{HomeAsset: "USDT", Evaluator: triarb.EvaluatorRayon, RayonOnUpdateReturn: triarb.RayonReturnFirst},
			{HomeAsset: "USDT", Evaluator: triarb.EvaluatorRayon, RayonOnUpdateReturn: triarb.RayonReturnBest},
		} {
			evaluator := triarb.NewEvaluator(cfg, universe, index, store)
			Expect(evaluator).NotTo(BeNil())
			_, found := evaluator.ProcessUpdate(triarb.TopOfBookUpdate{Symbol: "BTCUSDT", BestBidPrice: 1, BestAskPrice: 1, UpdateID: 1})
			Expect(found).To(BeFalse())
		}
	})
})

var _ = Describe("NullEvaluator", func() {
	It("writes to the store but never reports an opportunity", func() {
		store := triarb.NewQuoteStore()
		evaluator := triarb.NewNullEvaluator(store)
		u := triarb.TopOfBookUpdate{Symbol: "BTCUSDT", BestBidPrice: 1, UpdateID: 1}
		_, found := evaluator.ProcessUpdate(u)
		Expect(found).To(BeFalse())
		stored, ok := store.Get("BTCUSDT")
		Expect(ok).To(BeTrue())
		Expect(stored).To(Equal(u))
	})
})
