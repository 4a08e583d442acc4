package risk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

var ErrInvalidModel = errors.New("invalid risk model")

const (
	AggregationMean = "mean"
	AggregationSum  = "sum"
)

// Ensemble is a read-only tree ensemble regressor. Random forests average
// their trees (mean); boosted models add base_score and the scaled tree sum.
type Ensemble struct {
	Version       string    `json:"version"`
	FeatureSchema string    `json:"feature_schema"`
	Features      []string  `json:"features"`
	Aggregation   string    `json:"aggregation"`
	BaseScore     float64   `json:"base_score"`
	LearningRate  float64   `json:"learning_rate"`
	Importances   []float64 `json:"feature_importances"`
	Trees         []Tree    `json:"trees"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is a split when Leaf is nil; samples with value <= Threshold go Left.
type Node struct {
	Feature   int      `json:"feature"`
	Threshold float64  `json:"threshold"`
	Left      int      `json:"left"`
	Right     int      `json:"right"`
	Leaf      *float64 `json:"leaf,omitempty"`
}

func LoadEnsemble(path string) (*Ensemble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	return ParseEnsemble(f)
}

func ParseEnsemble(r io.Reader) (*Ensemble, error) {
	var e Ensemble
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

func (e *Ensemble) validate() error {
	if e.FeatureSchema != FeatureSchemaVersion {
		return fmt.Errorf("%w: feature schema %q, want %q", ErrInvalidModel, e.FeatureSchema, FeatureSchemaVersion)
	}
	if !slices.Equal(e.Features, FeatureNames) {
		return fmt.Errorf("%w: feature list does not match extractor", ErrInvalidModel)
	}
	if len(e.Importances) != len(FeatureNames) {
		return fmt.Errorf("%w: want %d importances, got %d", ErrInvalidModel, len(FeatureNames), len(e.Importances))
	}
	if e.Aggregation != AggregationMean && e.Aggregation != AggregationSum {
		return fmt.Errorf("%w: unknown aggregation %q", ErrInvalidModel, e.Aggregation)
	}
	if len(e.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrInvalidModel)
	}

	for ti, t := range e.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d is empty", ErrInvalidModel, ti)
		}
		for ni, n := range t.Nodes {
			if n.Leaf != nil {
				continue
			}
			if n.Feature < 0 || n.Feature >= len(FeatureNames) {
				return fmt.Errorf("%w: tree %d node %d: feature %d out of range", ErrInvalidModel, ti, ni, n.Feature)
			}
			// children always point forward, so traversal terminates
			if n.Left <= ni || n.Right <= ni || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return fmt.Errorf("%w: tree %d node %d: bad children", ErrInvalidModel, ti, ni)
			}
		}
	}
	return nil
}

func (e *Ensemble) Predict(values []float64) float64 {
	var sum float64
	for _, t := range e.Trees {
		sum += t.predict(values)
	}

	if e.Aggregation == AggregationMean {
		return sum / float64(len(e.Trees))
	}
	return e.BaseScore + e.LearningRate*sum
}

func (t Tree) predict(values []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf != nil {
			return *n.Leaf
		}
		var v float64
		if n.Feature < len(values) {
			v = values[n.Feature]
		}
		if v <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
