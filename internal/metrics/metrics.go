package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chainsentry"

// Metrics groups the pipeline collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	signalsEmitted     *prometheus.CounterVec
	blocksAnalyzed     prometheus.Counter
	providerRequests   *prometheus.CounterVec
	providerLatency    *prometheus.HistogramVec
	cacheLookups       *prometheus.CounterVec
	knownAddresses     *prometheus.GaugeVec
	configReloads      *prometheus.CounterVec
	riskModelAvailable prometheus.Gauge
	sinkFailures       *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		signalsEmitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_emitted_total",
			Help:      "Signals produced by the pattern matchers.",
		}, []string{"type"}),
		blocksAnalyzed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_analyzed_total",
			Help:      "Blocks run through the matchers.",
		}),
		providerRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sanctions_provider_requests_total",
			Help:      "Sanctions provider calls by outcome.",
		}, []string{"provider", "outcome"}),
		providerLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sanctions_provider_latency_seconds",
			Help:      "Sanctions provider call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sanctions_cache_lookups_total",
			Help:      "Sanctions cache lookups by result.",
		}, []string{"result"}),
		knownAddresses: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "known_addresses",
			Help:      "Entries per known-address set in the active configuration.",
		}, []string{"set"}),
		configReloads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_reloads_total",
			Help:      "Known-address configuration reloads by outcome.",
		}, []string{"outcome"}),
		riskModelAvailable: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "risk_model_available",
			Help:      "1 when the risk model is loaded.",
		}),
		sinkFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signal_sink_failures_total",
			Help:      "Failed signal publications per sink.",
		}, []string{"sink"}),
	}
}

func (m *Metrics) SignalEmitted(signalType string) {
	if m == nil {
		return
	}
	m.signalsEmitted.WithLabelValues(signalType).Inc()
}

func (m *Metrics) BlockAnalyzed() {
	if m == nil {
		return
	}
	m.blocksAnalyzed.Inc()
}

func (m *Metrics) ProviderRequest(provider, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.providerRequests.WithLabelValues(provider, outcome).Inc()
	m.providerLatency.WithLabelValues(provider).Observe(seconds)
}

func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) KnownAddresses(sizes map[string]int) {
	if m == nil {
		return
	}
	for set, size := range sizes {
		m.knownAddresses.WithLabelValues(set).Set(float64(size))
	}
}

func (m *Metrics) ConfigReload(outcome string) {
	if m == nil {
		return
	}
	m.configReloads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RiskModelAvailable(ok bool) {
	if m == nil {
		return
	}
	v := 0.0
	if ok {
		v = 1
	}
	m.riskModelAvailable.Set(v)
}

func (m *Metrics) SinkFailure(sink string) {
	if m == nil {
		return
	}
	m.sinkFailures.WithLabelValues(sink).Inc()
}
