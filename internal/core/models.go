package core

import (
	"math"
	"time"

	"chainsentry/internal/detect"
	"chainsentry/internal/risk"
	"chainsentry/internal/sanctions"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type AddressVerdict struct {
	Address     string           `json:"address"`
	Signals     []detect.Signal  `json:"signals"`
	RiskScore   risk.Score       `json:"riskScore"`
	Sanctions   sanctions.Result `json:"sanctionsResult"`
	Severity    Severity         `json:"severity"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

type TransactionVerdict struct {
	TransactionHash string             `json:"transactionHash"`
	Signals         []detect.Signal    `json:"signals"`
	Sanctions       []sanctions.Result `json:"sanctionsResults"`
	Severity        Severity           `json:"severity"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}

type Health struct {
	Status             string `json:"status"`
	RulesVersion       string `json:"rulesVersion"`
	RiskModelAvailable bool   `json:"riskModelAvailable"`
	Matchers           int    `json:"matchers"`
	Sinks              int    `json:"sinks"`
}

// SeverityFor maps a verdict to a band. Any sanctions hit is critical; otherwise the
// strongest of the risk score and the signal confidences decides.
func SeverityFor(sanctioned bool, riskScore float64, signals []detect.Signal) Severity {
	if sanctioned {
		return SeverityCritical
	}

	level := riskScore
	if math.IsNaN(level) {
		level = 0
	}
	for _, s := range signals {
		level = max(level, s.Confidence)
	}

	switch {
	case level <= 0.10:
		return SeverityInfo
	case level <= 0.30:
		return SeverityLow
	case level <= 0.50:
		return SeverityMedium
	case level <= 0.75:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
