package triarb_test

import (
	triarb "github.com/arbflow/triarb-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	It("accepts the documented defaults", func() {
		Expect(triarb.DefaultConfig().Validate()).To(Succeed())
	})

	It("rejects an empty home asset", func() {
		cfg := triarb.DefaultConfig()
		cfg.HomeAsset = ""
		Expect(cfg.Validate()).To(HaveOccurred())
	})

	It("rejects an unrecognized evaluator", func() {
		cfg := triarb.DefaultConfig()
		cfg.Evaluator = "quantum"
		Expect(cfg.Validate()).To(HaveOccurred())
	})

	It("rejects a rayon config with no return mode", func() {
		cfg := triarb.DefaultConfig()
		cfg.Evaluator = triarb.EvaluatorRayon
		cfg.RayonOnUpdateReturn = ""
		Expect(cfg.Validate()).To(HaveOccurred())
	})

	It("accepts an explicit rayon/first configuration", func() {
		cfg := triarb.DefaultConfig()
		cfg.Evaluator = triarb.EvaluatorRayon
		cfg.RayonOnUpdateReturn = triarb.RayonReturnFirst
		Expect(cfg.Validate()).To(Succeed())
	})

	It("rejects a negative worker count", func() {
		cfg := triarb.DefaultConfig()
		cfg.Evaluator = triarb.EvaluatorRayon
		cfg.RayonWorkers = -1
		Expect(cfg.Validate()).To(HaveOccurred())
	})
})
