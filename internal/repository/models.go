package repository

import "time"

// SignalRecord is the persisted form of a detected signal. List and metadata
// columns hold JSON documents.
type SignalRecord struct {
	ID                     string    `gorm:"primaryKey;type:varchar(36)"`
	Type                   string    `gorm:"type:varchar(32);index;not null"`
	Confidence             float64   `gorm:"not null"`
	BlockNumber            uint64    `gorm:"index;not null"`
	DetectedAt             time.Time `gorm:"not null"`
	TargetTransaction      string    `gorm:"type:varchar(66);index;not null"`
	SupportingTransactions string    `gorm:"type:text"`
	ProfitEstimateEth      float64
	ValueEth               float64
	GasUsed                uint64
	AddressesInvolved      string `gorm:"type:text"`
	Metadata               string `gorm:"type:text"`
}
