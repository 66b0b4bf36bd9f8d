package triarb_test

import (
	"errors"

	triarb "github.com/arbflow/triarb-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var bothParsers = []struct {
	name   string
	parser triarb.Parser
}{
	{"structured", triarb.NewStructuredParser()},
	{"scanning", triarb.NewScanningParser()},
}

var _ = Describe("Parser", func() {
	for _, tc := range bothParsers {
		tc := tc
		Context(tc.name, func() {
			It("parses a well-formed bookTicker frame", func() {
				raw := []byte(`{"s":"BTCUSDT","b":"30000.50","B":"1.2","a":"30001.00","A":"0.8","u":42}`)
				u, err := tc.parser.Parse(raw)
				Expect(err).NotTo(HaveOccurred())
				Expect(u).To(Equal(triarb.TopOfBookUpdate{
					Symbol:       "BTCUSDT",
					BestBidPrice: 30000.50,
					BestBidQty:   1.2,
					BestAskPrice: 30001.00,
					BestAskQty:   0.8,
					UpdateID:     42,
				}))
			})

			It("tolerates field reordering and extra keys", func() {
				raw := []byte(`{"u":7,"extra":true,"a":"2.0","A":"3.0","s":"ETHBTC","b":"1.0","B":"4.0"}`)
				u, err := tc.parser.Parse(raw)
				Expect(err).NotTo(HaveOccurred())
				Expect(u.Symbol).To(Equal(triarb.Symbol("ETHBTC")))
				Expect(u.UpdateID).To(Equal(uint64(7)))
			})

			It("reports ParseMissingField when a required field is absent", func() {
				raw := []byte(`{"s":"BTCUSDT","b":"1.0","B":"1.0","a":"1.0","A":"1.0"}`)
				_, err := tc.parser.Parse(raw)
				var perr *triarb.ParseError
				Expect(errors.As(err, &perr)).To(BeTrue())
				Expect(perr.Kind).To(Equal(triarb.ParseMissingField))
				Expect(perr.Field).To(Equal("u"))
			})

			It("reports ParseMalformedField for an empty symbol", func() {
				raw := []byte(`{"s":"","b":"1.0","B":"1.0","a":"1.0","A":"1.0","u":1}`)
				_, err := tc.parser.Parse(raw)
				var perr *triarb.ParseError
				Expect(errors.As(err, &perr)).To(BeTrue())
				Expect(perr.Kind).To(Equal(triarb.ParseMalformedField))
				Expect(perr.Field).To(Equal("s"))
			})

			It("reports ParseMalformedField for an empty numeric string", func() {
				raw := []byte(`{"s":"BTCUSDT","b":"","B":"1.0","a":"1.0","A":"1.0","u":1}`)
				_, err := tc.parser.Parse(raw)
				var perr *triarb.ParseError
				Expect(errors.As(err, &perr)).To(BeTrue())
				Expect(perr.Kind).To(Equal(triarb.ParseMalformedField))
				Expect(perr.Field).To(Equal("b"))
			})

			It("reports ParseBadNumber for an unparseable numeric string", func() {
				raw := []byte(`{"s":"BTCUSDT","b":"1.0","B":"1.0","a":"not-a-number","A":"1.0","u":1}`)
				_, err := tc.parser.Parse(raw)
				var perr *triarb.ParseError
				Expect(errors.As(err, &perr)).To(BeTrue())
				Expect(perr.Kind).To(Equal(triarb.ParseBadNumber))
				Expect(perr.Field).To(Equal("a"))
			})

			It("rejects non-object input", func() {
				_, err := tc.parser.Parse([]byte(`[1,2,3]`))
				Expect(err).To(HaveOccurred())
			})
		})
	}

	Context("cross-variant equivalence", func() {
		It("produces byte-for-byte identical updates for the same well-formed input", func() {
			frames := [][]byte{
				[]byte(`{"s":"BTCUSDT","b":"30000.5","B":"1.25","a":"30001","A":"0.75","u":100}`),
				[]byte(`{"u":101,"s":"ETHUSDT","B":"5","b":"2000.01","A":"1","a":"2000.99"}`),
				[]byte(`{"s":"ETHBTC","b":"0.0666","B":"10","a":"0.0667","A":"11","u":102}`),
			}
			for _, frame := range frames {
				structured, errS := triarb.NewStructuredParser().Parse(frame)
				scanned, errC := triarb.NewScanningParser().Parse(frame)
				Expect(errS).NotTo(HaveOccurred())
				Expect(errC).NotTo(HaveOccurred())
				Expect(structured).To(Equal(scanned))
			}
		})

		It("agrees on the error kind for malformed input", func() {
			frame := []byte(`{"s":"BTCUSDT","b":"x","B":"1","a":"1","A":"1","u":1}`)
			_, errS := triarb.NewStructuredParser().Parse(frame)
			_, errC := triarb.NewScanningParser().Parse(frame)
			var perrS, perrC *triarb.ParseError
			Expect(errors.As(errS, &perrS)).To(BeTrue())
			Expect(errors.As(errC, &perrC)).To(BeTrue())
			Expect(perrS.Kind).To(Equal(perrC.Kind))
			Expect(perrS.Field).To(Equal(perrC.Field))
		})
	})
})
