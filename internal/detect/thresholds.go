package detect

import (
	"fmt"

	"github.com/jellydator/validation"
)

const (
	TieBreakHighestGas = "highest_gas"
	TieBreakFirstMatch = "first_match"
)

// Thresholds holds every heuristic constant used by the classifier and the matchers.
// Version identifies the set in logs and persisted signals.
type Thresholds struct {
	Version string `yaml:"version" json:"version"`

	VictimGasPriceGwei float64 `yaml:"victim_gas_price_gwei" json:"victimGasPriceGwei"`
	MEVGasPriceGwei    float64 `yaml:"mev_gas_price_gwei" json:"mevGasPriceGwei"`

	SandwichGasMultiplier     float64 `yaml:"sandwich_gas_multiplier" json:"sandwichGasMultiplier"`
	SandwichConfidenceDivisor float64 `yaml:"sandwich_confidence_divisor" json:"sandwichConfidenceDivisor"`
	SandwichVictimCaptureRate float64 `yaml:"sandwich_victim_capture_rate" json:"sandwichVictimCaptureRate"`
	SandwichTieBreak          string  `yaml:"sandwich_tie_break" json:"sandwichTieBreak"`

	LiquidationConfidence           float64 `yaml:"liquidation_confidence" json:"liquidationConfidence"`
	LiquidationProfitPlaceholderEth float64 `yaml:"liquidation_profit_placeholder_eth" json:"liquidationProfitPlaceholderEth"`

	WhaleMinTransactions    int     `yaml:"whale_min_transactions" json:"whaleMinTransactions"`
	WhaleGroupValueEth      float64 `yaml:"whale_group_value_eth" json:"whaleGroupValueEth"`
	WhaleConfidence         float64 `yaml:"whale_confidence" json:"whaleConfidence"`
	LargeTransferEth        float64 `yaml:"large_transfer_eth" json:"largeTransferEth"`
	LargeTransferConfidence float64 `yaml:"large_transfer_confidence" json:"largeTransferConfidence"`
	ExchangeFlowConfidence  float64 `yaml:"exchange_flow_confidence" json:"exchangeFlowConfidence"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Version:                         "2024.1",
		VictimGasPriceGwei:              50,
		MEVGasPriceGwei:                 200,
		SandwichGasMultiplier:           1.5,
		SandwichConfidenceDivisor:       10,
		SandwichVictimCaptureRate:       0.001,
		SandwichTieBreak:                TieBreakHighestGas,
		LiquidationConfidence:           0.9,
		LiquidationProfitPlaceholderEth: 0.1,
		WhaleMinTransactions:            3,
		WhaleGroupValueEth:              50,
		WhaleConfidence:                 0.8,
		LargeTransferEth:                100,
		LargeTransferConfidence:         0.7,
		ExchangeFlowConfidence:          0.85,
	}
}

func (t Thresholds) Validate() error {
	unit := []validation.Rule{validation.Min(0.0), validation.Max(1.0)}
	err := validation.ValidateStruct(&t,
		validation.Field(&t.Version, validation.Required),
		validation.Field(&t.VictimGasPriceGwei, validation.Min(0.0)),
		validation.Field(&t.MEVGasPriceGwei, validation.Min(0.0)),
		validation.Field(&t.SandwichGasMultiplier, validation.Required, validation.Min(1.0)),
		validation.Field(&t.SandwichConfidenceDivisor, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&t.SandwichVictimCaptureRate, unit...),
		validation.Field(&t.SandwichTieBreak, validation.Required, validation.In(TieBreakHighestGas, TieBreakFirstMatch)),
		validation.Field(&t.LiquidationConfidence, unit...),
		validation.Field(&t.LiquidationProfitPlaceholderEth, validation.Min(0.0)),
		validation.Field(&t.WhaleMinTransactions, validation.Required, validation.Min(1)),
		validation.Field(&t.WhaleGroupValueEth, validation.Min(0.0)),
		validation.Field(&t.WhaleConfidence, unit...),
		validation.Field(&t.LargeTransferEth, validation.Min(0.0)),
		validation.Field(&t.LargeTransferConfidence, unit...),
		validation.Field(&t.ExchangeFlowConfidence, unit...),
	)
	if err != nil {
		return fmt.Errorf("validate thresholds %q: %w", t.Version, err)
	}
	return nil
}
