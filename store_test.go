package triarb_test

import (
	"sync"

	triarb "github.com/arbflow/triarb-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("QuoteStore", func() {
	It("reports a miss for a symbol that has never been written", func() {
		store := triarb.NewQuoteStore()
		_, ok := store.Get("BTCUSDT")
		Expect(ok).To(BeFalse())
	})

	It("returns the latest value written for a symbol", func() {
		store := triarb.NewQuoteStore()
		store.Put(triarb.TopOfBookUpdate{Symbol: "BTCUSDT", BestBidPrice: 1, UpdateID: 1})
		store.Put(triarb.TopOfBookUpdate{Symbol: "BTCUSDT", BestBidPrice: 2, UpdateID: 2})
		u, ok := store.Get("BTCUSDT")
		Expect(ok).To(BeTrue())
		Expect(u.BestBidPrice).To(Equal(2.0))
	})

	It("survives concurrent writers to distinct symbols without data races or lost updates", func() {
		store := triarb.NewQuoteStore()
		symbols := []triarb.Symbol{"BTCUSDT", "ETHUSDT", "ETHBTC", "SOLUSDT", "BNBUSDT"}

		var wg sync.WaitGroup
		for _, symbol := range symbols {
			symbol := symbol
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					store.Put(triarb.TopOfBookUpdate{Symbol: symbol, UpdateID: uint64(i)})
				}
			}()
		}
		wg.Wait()

		Expect(store.Len()).To(Equal(len(symbols)))
		for _, symbol := range symbols {
			u, ok := store.Get(symbol)
			Expect(ok).To(BeTrue())
			Expect(u.UpdateID).To(Equal(uint64(99)))
		}
	})
})
