package core

import (
	"context"

	"chainsentry/internal/detect"
	"chainsentry/internal/risk"
	"chainsentry/internal/sanctions"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BlockSource . BlockSource
type BlockSource interface {
	FetchBlock(ctx context.Context, number uint64) (detect.Block, error)
}

//counterfeiter:generate -o fake -fake-name SanctionsScreener . SanctionsScreener
type SanctionsScreener interface {
	Check(ctx context.Context, address string) (sanctions.Result, error)
	BatchCheck(ctx context.Context, addresses []string) ([]sanctions.Result, error)
	Status(ctx context.Context, address string) (sanctions.State, error)
}

//counterfeiter:generate -o fake -fake-name RiskScorer . RiskScorer
type RiskScorer interface {
	Score(profile risk.Profile) risk.Score
	ModelAvailable() bool
}

//counterfeiter:generate -o fake -fake-name SignalSink . SignalSink
type SignalSink interface {
	Name() string
	Publish(ctx context.Context, signals []detect.Signal) error
}

//counterfeiter:generate -o fake -fake-name SignalStore . SignalStore
type SignalStore interface {
	SignalsByBlock(ctx context.Context, blockNumber uint64) ([]detect.Signal, error)
}

//counterfeiter:generate -o fake -fake-name RuleSet . RuleSet
type RuleSet interface {
	Reload(known detect.KnownAddresses) error
	Version() string
}

//counterfeiter:generate -o fake -fake-name Denylist . Denylist
type Denylist interface {
	Replace(addresses []string)
}

type FeatureExtractor interface {
	Extract(address string, h risk.History) risk.Profile
}
