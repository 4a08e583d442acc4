package detect

import (
	"math/big"
	"strings"
	"time"
)

type SignalType string

const (
	SignalSandwichAttack     SignalType = "SANDWICH_ATTACK"
	SignalLiquidation        SignalType = "LIQUIDATION"
	SignalAccumulation       SignalType = "ACCUMULATION"
	SignalDistribution       SignalType = "DISTRIBUTION"
	SignalExchangeDeposit    SignalType = "EXCHANGE_DEPOSIT"
	SignalExchangeWithdrawal SignalType = "EXCHANGE_WITHDRAWAL"
	SignalLargeTransfer      SignalType = "LARGE_TRANSFER"
)

// Transaction is the normalized view of an EVM transaction the matchers work on.
// Nil big integers are read as zero.
type Transaction struct {
	Hash            string   `json:"hash"`
	From            string   `json:"from"`
	To              *string  `json:"to,omitempty"`
	ValueWei        *big.Int `json:"valueWei"`
	GasPriceWei     *big.Int `json:"gasPriceWei"`
	GasUsed         uint64   `json:"gasUsed"`
	GasLimit        uint64   `json:"gasLimit"`
	BlockNumber     uint64   `json:"blockNumber"`
	PositionInBlock uint64   `json:"positionInBlock"`
	Input           []byte   `json:"input,omitempty"`
}

func (t Transaction) ToAddress() string {
	if t.To == nil {
		return ""
	}
	return NormalizeAddress(*t.To)
}

func (t Transaction) FromAddress() string {
	return NormalizeAddress(t.From)
}

func (t Transaction) ValueEth() float64 {
	return WeiToEth(t.ValueWei)
}

func (t Transaction) GasPriceGwei() float64 {
	return WeiToGwei(t.GasPriceWei)
}

type Block struct {
	Number       uint64        `json:"number"`
	Transactions []Transaction `json:"transactions"`
}

type Signal struct {
	ID                     string     `json:"signalId"`
	Type                   SignalType `json:"signalType"`
	Confidence             float64    `json:"confidence"`
	BlockNumber            uint64     `json:"blockNumber"`
	DetectedAt             time.Time  `json:"detectedAt"`
	TargetTransaction      string     `json:"targetTransaction"`
	SupportingTransactions []string   `json:"supportingTransactions"`
	ProfitEstimateEth      float64    `json:"profitEstimateEth"`
	ValueEth               float64    `json:"valueEth"`
	GasUsed                uint64     `json:"gasUsed"`
	AddressesInvolved      []string   `json:"addressesInvolved"`
	Metadata               Metadata   `json:"metadata"`
}

// Involves reports whether address took part in the signal.
func (s Signal) Involves(address string) bool {
	address = NormalizeAddress(address)
	for _, a := range s.AddressesInvolved {
		if a == address {
			return true
		}
	}
	return false
}

// Touches reports whether the transaction hash is the target or a supporting transaction.
func (s Signal) Touches(hash string) bool {
	hash = strings.ToLower(hash)
	if strings.ToLower(s.TargetTransaction) == hash {
		return true
	}
	for _, h := range s.SupportingTransactions {
		if strings.ToLower(h) == hash {
			return true
		}
	}
	return false
}

// Metadata carries exactly one kind-specific payload, selected by the signal type.
type Metadata struct {
	Sandwich    *SandwichMetadata    `json:"sandwich,omitempty"`
	Liquidation *LiquidationMetadata `json:"liquidation,omitempty"`
	Whale       *WhaleMetadata       `json:"whale,omitempty"`
	Additional  map[string]string    `json:"additionalProperties,omitempty"`
}

type SandwichMetadata struct {
	FrontRunMultiplier float64 `json:"front_run_multiplier"`
	BackRunMultiplier  float64 `json:"back_run_multiplier"`
	VictimValueEth     float64 `json:"victim_value_eth"`
	TieBreak           string  `json:"tie_break"`
}

type LiquidationMetadata struct {
	Protocol  string `json:"protocol"`
	MatchedBy string `json:"matched_by"`
}

type WhaleMetadata struct {
	TransactionCount int     `json:"transaction_count"`
	AverageValueEth  float64 `json:"average_value_eth"`
	TotalValueEth    float64 `json:"total_value_eth"`
	Exchange         string  `json:"exchange,omitempty"`
	Direction        string  `json:"direction"`
}

type Classification struct {
	IsVictimCandidate bool `json:"isVictimCandidate"`
	IsMEVCandidate    bool `json:"isMevCandidate"`
	IsLiquidation     bool `json:"isLiquidation"`
}

func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
