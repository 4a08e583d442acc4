package risk

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

const (
	DefaultScore      = 0.5
	ModelUnavailable  = "model unavailable"
	topContributions  = 5
	topRiskFactors    = 3
	riskFactorMinimum = 0.1
)

type Scorer struct {
	logs  *zap.SugaredLogger
	model *Ensemble
}

// NewScorer wraps model; a nil model makes every score fall back to DefaultScore.
func NewScorer(logger *zap.SugaredLogger, model *Ensemble) *Scorer {
	if model == nil {
		logger.Warnw("risk model not loaded, scores will use the default",
			"default_score", DefaultScore)
	}
	return &Scorer{
		logs:  logger,
		model: model,
	}
}

func (s *Scorer) ModelAvailable() bool {
	return s.model != nil
}

func (s *Scorer) Score(profile Profile) Score {
	if s.model == nil {
		return Score{
			Address:       profile.Address,
			Score:         DefaultScore,
			Contributions: []Contribution{},
			RiskFactors:   []string{},
			Explanation:   []string{ModelUnavailable},
		}
	}

	values := profile.Features.Values()
	raw := s.model.Predict(values)
	score := clamp(raw)
	if score != raw {
		s.logs.Infow("risk score clamped",
			"address", profile.Address,
			"raw_score", raw,
			"score", score)
	}

	contributions := s.contributions(values)

	factors := []string{}
	for _, c := range contributions {
		if len(factors) == topRiskFactors {
			break
		}
		if math.Abs(c.Contribution) > riskFactorMinimum {
			factors = append(factors, c.Label)
		}
	}

	explanation := make([]string, 0, len(contributions)+1)
	explanation = append(explanation, fmt.Sprintf("score %.3f from model %s", score, s.model.Version))
	for _, c := range contributions {
		explanation = append(explanation, fmt.Sprintf("%s (%+.3f)", c.Label, c.Contribution))
	}

	return Score{
		Address:        profile.Address,
		Score:          score,
		ModelAvailable: true,
		ModelVersion:   s.model.Version,
		Contributions:  contributions,
		RiskFactors:    factors,
		Explanation:    explanation,
	}
}

// contributions ranks value × importance by magnitude and keeps the top entries.
func (s *Scorer) contributions(values []float64) []Contribution {
	all := make([]Contribution, 0, len(FeatureNames))
	for i, name := range FeatureNames {
		c := values[i] * s.model.Importances[i]
		if math.IsNaN(c) || math.IsInf(c, 0) {
			c = 0
		}
		label := "Low " + name
		if c > 0 {
			label = "High " + name
		}
		all = append(all, Contribution{
			Feature:      name,
			Value:        values[i],
			Importance:   s.model.Importances[i],
			Contribution: c,
			Label:        label,
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return math.Abs(all[i].Contribution) > math.Abs(all[j].Contribution)
	})
	return all[:min(topContributions, len(all))]
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
