package handler

import (
	"context"
	"net/http"

	"chainsentry/internal/core"
	"chainsentry/internal/detect"
	"chainsentry/internal/risk"
	"chainsentry/internal/sanctions"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AnalysisService . AnalysisService
type AnalysisService interface {
	AnalyzeBlocks(ctx context.Context, blocks []detect.Block) (map[uint64][]detect.Signal, error)
	AnalyzeBlockNumber(ctx context.Context, number uint64) ([]detect.Signal, error)
	StoredSignals(ctx context.Context, blockNumber uint64) ([]detect.Signal, error)
	AddressVerdict(ctx context.Context, address string, history risk.History, signals []detect.Signal) (core.AddressVerdict, error)
	TransactionVerdict(ctx context.Context, tx detect.Transaction, signals []detect.Signal) (core.TransactionVerdict, error)
	RiskScore(address string, history risk.History) risk.Score
	Sanctions(ctx context.Context, address string) (sanctions.Result, error)
	SanctionsBatch(ctx context.Context, addresses []string) ([]sanctions.Result, error)
	SanctionsStatus(ctx context.Context, address string) (sanctions.State, error)
	Health() core.Health
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
