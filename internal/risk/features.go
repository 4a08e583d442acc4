package risk

import (
	"math"
	"strings"
	"time"
)

type FeatureExtractor struct {
	now func() time.Time
}

// NewFeatureExtractor builds an extractor; now defaults to time.Now.
func NewFeatureExtractor(now func() time.Time) *FeatureExtractor {
	if now == nil {
		now = time.Now
	}
	return &FeatureExtractor{
		now: now,
	}
}

func (e *FeatureExtractor) Extract(address string, h History) Profile {
	count := float64(max(h.TransactionCount, len(h.TransactionValuesEth)))

	var total, maxValue float64
	for _, v := range h.TransactionValuesEth {
		v = finite(v)
		total += v
		maxValue = math.Max(maxValue, v)
	}

	var avg, contractRatio float64
	if count > 0 {
		avg = total / count
		contractRatio = float64(h.ContractInteractions) / count
	}

	var age float64
	if h.FirstSeen != nil && !h.FirstSeen.IsZero() {
		age = e.now().Sub(*h.FirstSeen).Hours() / 24
	}

	v := FeatureVector{
		TransactionCount:         count,
		TotalVolumeEth:           total,
		AvgTxValue:               avg,
		MaxTxValue:               maxValue,
		GasPriceStdDev:           stdDev(h.GasPricesGwei),
		ContractInteractionRatio: math.Min(contractRatio, 1),
		UniqueCounterparties:     float64(countUnique(h.Counterparties)),
		MEVActivityScore:         h.MEVActivityScore,
		WhaleMovementScore:       h.WhaleMovementScore,
		SanctionsRiskScore:       h.SanctionsRiskScore,
		AgeDays:                  age,
		BalanceVolatility:        coefficientOfVariation(h.BalanceHistoryEth),
	}

	return Profile{
		Address:  strings.ToLower(address),
		Features: sanitize(v),
	}
}

// sanitize forces every feature to be finite and non-negative.
func sanitize(v FeatureVector) FeatureVector {
	for _, f := range []*float64{
		&v.TransactionCount, &v.TotalVolumeEth, &v.AvgTxValue, &v.MaxTxValue,
		&v.GasPriceStdDev, &v.ContractInteractionRatio, &v.UniqueCounterparties,
		&v.MEVActivityScore, &v.WhaleMovementScore, &v.SanctionsRiskScore,
		&v.AgeDays, &v.BalanceVolatility,
	} {
		*f = finite(*f)
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func stdDev(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += finite(s)
	}
	mean := sum / float64(len(samples))

	var sq float64
	for _, s := range samples {
		d := finite(s) - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(samples)))
}

func coefficientOfVariation(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += finite(s)
	}
	mean := sum / float64(len(samples))
	if mean == 0 {
		return 0
	}
	return stdDev(samples) / mean
}

func countUnique(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}
