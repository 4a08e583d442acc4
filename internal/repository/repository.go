package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"chainsentry/internal/detect"
)

const SinkName = "postgres"

type SignalRepository struct {
	db Storage
}

func NewSignalRepository(db Storage) *SignalRepository {
	return &SignalRepository{
		db: db,
	}
}

func (r *SignalRepository) Migrate() error {
	err := r.db.MigrateTable(&SignalRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *SignalRepository) Name() string {
	return SinkName
}

// Publish stores signals; ones already stored under the same ID are left untouched.
func (r *SignalRepository) Publish(ctx context.Context, signals []detect.Signal) error {
	if len(signals) == 0 {
		return nil
	}

	records := make([]SignalRecord, 0, len(signals))
	for _, s := range signals {
		rec, err := toRecord(s)
		if err != nil {
			return fmt.Errorf("encode signal %s: %w", s.ID, err)
		}
		records = append(records, rec)
	}

	if err := r.db.Insert(ctx, &records); err != nil {
		return fmt.Errorf("save signals: %w", err)
	}

	return nil
}

func (r *SignalRepository) SignalsByBlock(ctx context.Context, blockNumber uint64) ([]detect.Signal, error) {
	var records []SignalRecord

	err := r.db.GetAllBy(ctx, "block_number", blockNumber, "detected_at, id", &records)
	if err != nil {
		return nil, fmt.Errorf("get signals for block %d: %w", blockNumber, err)
	}

	signals := make([]detect.Signal, 0, len(records))
	for _, rec := range records {
		s, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("decode signal %s: %w", rec.ID, err)
		}
		signals = append(signals, s)
	}

	return signals, nil
}

func toRecord(s detect.Signal) (SignalRecord, error) {
	supporting, err := json.Marshal(nonNil(s.SupportingTransactions))
	if err != nil {
		return SignalRecord{}, err
	}
	addresses, err := json.Marshal(nonNil(s.AddressesInvolved))
	if err != nil {
		return SignalRecord{}, err
	}
	metadata, err := json.Marshal(s.Metadata)
	if err != nil {
		return SignalRecord{}, err
	}

	return SignalRecord{
		ID:                     s.ID,
		Type:                   string(s.Type),
		Confidence:             s.Confidence,
		BlockNumber:            s.BlockNumber,
		DetectedAt:             s.DetectedAt,
		TargetTransaction:      s.TargetTransaction,
		SupportingTransactions: string(supporting),
		ProfitEstimateEth:      s.ProfitEstimateEth,
		ValueEth:               s.ValueEth,
		GasUsed:                s.GasUsed,
		AddressesInvolved:      string(addresses),
		Metadata:               string(metadata),
	}, nil
}

func fromRecord(rec SignalRecord) (detect.Signal, error) {
	s := detect.Signal{
		ID:                rec.ID,
		Type:              detect.SignalType(rec.Type),
		Confidence:        rec.Confidence,
		BlockNumber:       rec.BlockNumber,
		DetectedAt:        rec.DetectedAt.UTC(),
		TargetTransaction: rec.TargetTransaction,
		ProfitEstimateEth: rec.ProfitEstimateEth,
		ValueEth:          rec.ValueEth,
		GasUsed:           rec.GasUsed,
	}
	if err := unmarshalColumn(rec.SupportingTransactions, &s.SupportingTransactions); err != nil {
		return detect.Signal{}, err
	}
	if err := unmarshalColumn(rec.AddressesInvolved, &s.AddressesInvolved); err != nil {
		return detect.Signal{}, err
	}
	if err := unmarshalColumn(rec.Metadata, &s.Metadata); err != nil {
		return detect.Signal{}, err
	}
	return s, nil
}

func unmarshalColumn(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
