package risk

import "time"

// FeatureSchemaVersion changes whenever FeatureNames changes order or content.
const FeatureSchemaVersion = "features/v1"

var FeatureNames = []string{
	"transaction_count",
	"total_volume_eth",
	"avg_tx_value",
	"max_tx_value",
	"gas_price_std_dev",
	"contract_interaction_ratio",
	"unique_counterparties",
	"mev_activity_score",
	"whale_movement_score",
	"sanctions_risk_score",
	"age_days",
	"balance_volatility",
}

type FeatureVector struct {
	TransactionCount         float64 `json:"transaction_count"`
	TotalVolumeEth           float64 `json:"total_volume_eth"`
	AvgTxValue               float64 `json:"avg_tx_value"`
	MaxTxValue               float64 `json:"max_tx_value"`
	GasPriceStdDev           float64 `json:"gas_price_std_dev"`
	ContractInteractionRatio float64 `json:"contract_interaction_ratio"`
	UniqueCounterparties     float64 `json:"unique_counterparties"`
	MEVActivityScore         float64 `json:"mev_activity_score"`
	WhaleMovementScore       float64 `json:"whale_movement_score"`
	SanctionsRiskScore       float64 `json:"sanctions_risk_score"`
	AgeDays                  float64 `json:"age_days"`
	BalanceVolatility        float64 `json:"balance_volatility"`
}

// Values returns the features in FeatureNames order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.TransactionCount,
		v.TotalVolumeEth,
		v.AvgTxValue,
		v.MaxTxValue,
		v.GasPriceStdDev,
		v.ContractInteractionRatio,
		v.UniqueCounterparties,
		v.MEVActivityScore,
		v.WhaleMovementScore,
		v.SanctionsRiskScore,
		v.AgeDays,
		v.BalanceVolatility,
	}
}

// Profile is the scorer input for one address.
type Profile struct {
	Address  string        `json:"address"`
	Features FeatureVector `json:"features"`
}

// History is the raw activity an address profile is built from. Missing fields count as zero.
type History struct {
	TransactionCount     int        `json:"transactionCount,omitempty"`
	TransactionValuesEth []float64  `json:"transactionValuesEth,omitempty"`
	GasPricesGwei        []float64  `json:"gasPricesGwei,omitempty"`
	ContractInteractions int        `json:"contractInteractions,omitempty"`
	Counterparties       []string   `json:"counterparties,omitempty"`
	MEVActivityScore     float64    `json:"mevActivityScore,omitempty"`
	WhaleMovementScore   float64    `json:"whaleMovementScore,omitempty"`
	SanctionsRiskScore   float64    `json:"sanctionsRiskScore,omitempty"`
	FirstSeen            *time.Time `json:"firstSeen,omitempty"`
	BalanceHistoryEth    []float64  `json:"balanceHistoryEth,omitempty"`
}

type Contribution struct {
	Feature      string  `json:"feature"`
	Value        float64 `json:"value"`
	Importance   float64 `json:"importance"`
	Contribution float64 `json:"contribution"`
	Label        string  `json:"label"`
}

type Score struct {
	Address        string         `json:"address"`
	Score          float64        `json:"score"`
	ModelAvailable bool           `json:"modelAvailable"`
	ModelVersion   string         `json:"modelVersion,omitempty"`
	Contributions  []Contribution `json:"contributions"`
	RiskFactors    []string       `json:"riskFactors"`
	Explanation    []string       `json:"explanation"`
}
