package risk_test

import (
	"strings"

	"chainsentry/internal/risk"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ensemble", func() {
	const validHeader = `"feature_schema":"features/v1","features":["transaction_count","total_volume_eth","avg_tx_value","max_tx_value","gas_price_std_dev","contract_interaction_ratio","unique_counterparties","mev_activity_score","whale_movement_score","sanctions_risk_score","age_days","balance_volatility"],"feature_importances":[0,0,0,0,0,0,0,0,0,0,0,0]`

	parse := func(body string) (*risk.Ensemble, error) {
		return risk.ParseEnsemble(strings.NewReader(body))
	}

	It("should average trees for mean aggregation", func() {
		e, err := parse(`{"version":"rf",` + validHeader + `,"aggregation":"mean","trees":[{"nodes":[{"leaf":0.2}]},{"nodes":[{"leaf":0.4}]}]}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Predict(make([]float64, 12))).To(BeNumerically("~", 0.3, 1e-9))
	})

	It("should reject a mismatched feature schema", func() {
		_, err := parse(`{"feature_schema":"features/v0","aggregation":"mean","trees":[{"nodes":[{"leaf":0.2}]}]}`)
		Expect(err).To(MatchError(risk.ErrInvalidModel))
	})

	It("should reject trees that point backwards", func() {
		_, err := parse(`{"version":"x",` + validHeader + `,"aggregation":"sum","trees":[{"nodes":[{"feature":0,"threshold":1,"left":0,"right":1},{"leaf":1}]}]}`)
		Expect(err).To(MatchError(risk.ErrInvalidModel))
	})

	It("should reject unknown aggregations", func() {
		_, err := parse(`{"version":"x",` + validHeader + `,"aggregation":"median","trees":[{"nodes":[{"leaf":1}]}]}`)
		Expect(err).To(MatchError(risk.ErrInvalidModel))
	})

	It("should fail on a missing file", func() {
		_, err := risk.LoadEnsemble("testdata/missing.json")
		Expect(err).To(HaveOccurred())
	})
})
