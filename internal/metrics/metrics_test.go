package metrics_test

import (
	"strings"

	"chainsentry/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Metrics", func() {
	var (
		reg *prometheus.Registry
		m   *metrics.Metrics
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		m = metrics.New(reg)
	})

	It("should count signals per type", func() {
		m.SignalEmitted("SANDWICH_ATTACK")
		m.SignalEmitted("SANDWICH_ATTACK")
		m.SignalEmitted("LIQUIDATION")

		expected := `
# HELP chainsentry_signals_emitted_total Signals produced by the pattern matchers.
# TYPE chainsentry_signals_emitted_total counter
chainsentry_signals_emitted_total{type="LIQUIDATION"} 1
chainsentry_signals_emitted_total{type="SANDWICH_ATTACK"} 2
`
		Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "chainsentry_signals_emitted_total")).To(Succeed())
	})

	It("should expose empty known-address sets as zero", func() {
		m.KnownAddresses(map[string]int{"dex_routers": 0, "exchanges": 4})

		expected := `
# HELP chainsentry_known_addresses Entries per known-address set in the active configuration.
# TYPE chainsentry_known_addresses gauge
chainsentry_known_addresses{set="dex_routers"} 0
chainsentry_known_addresses{set="exchanges"} 4
`
		Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "chainsentry_known_addresses")).To(Succeed())
	})

	It("should record provider outcomes", func() {
		m.ProviderRequest("chainalysis", "error", 0.2)
		count, err := testutil.GatherAndCount(reg, "chainsentry_sanctions_provider_requests_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})

	It("should ignore calls on a nil receiver", func() {
		var nilMetrics *metrics.Metrics
		Expect(func() {
			nilMetrics.SignalEmitted("x")
			nilMetrics.CacheLookup("hit")
			nilMetrics.RiskModelAvailable(true)
		}).NotTo(Panic())
	})
})
