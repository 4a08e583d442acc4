package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"chainsentry/internal/detect"
	"chainsentry/internal/metrics"
	"chainsentry/internal/risk"
	"chainsentry/internal/sanctions"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoBlockSource = errors.New("block source not configured")
	ErrNoSignalStore = errors.New("signal store not configured")
	ErrBlockSource   = errors.New("block source failed")
)

var TimeNow = time.Now

const blockConcurrency = 8

type Option func(*Analyzer)

func WithBlockSource(source BlockSource) Option {
	return func(a *Analyzer) {
		a.source = source
	}
}

func WithSignalStore(store SignalStore) Option {
	return func(a *Analyzer) {
		a.store = store
	}
}

// WithSinks adds destinations every analyzed block's signals are published to.
func WithSinks(sinks ...SignalSink) Option {
	return func(a *Analyzer) {
		a.sinks = append(a.sinks, sinks...)
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Analyzer) {
		a.metrics = m
	}
}

// Analyzer runs the matchers over blocks and merges signals, risk scores and
// sanctions results into verdicts.
type Analyzer struct {
	logs      *zap.SugaredLogger
	matchers  []detect.Matcher
	rules     RuleSet
	denylist  Denylist
	screener  SanctionsScreener
	extractor FeatureExtractor
	scorer    RiskScorer
	source    BlockSource
	store     SignalStore
	sinks     []SignalSink
	metrics   *metrics.Metrics
}

func NewAnalyzer(
	logger *zap.SugaredLogger,
	matchers []detect.Matcher,
	rules RuleSet,
	denylist Denylist,
	screener SanctionsScreener,
	extractor FeatureExtractor,
	scorer RiskScorer,
	opts ...Option,
) *Analyzer {
	a := &Analyzer{
		logs:      logger,
		matchers:  matchers,
		rules:     rules,
		denylist:  denylist,
		screener:  screener,
		extractor: extractor,
		scorer:    scorer,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.metrics.RiskModelAvailable(scorer.ModelAvailable())
	return a
}

// AnalyzeBlock runs every matcher on block concurrently and returns the signals in
// matcher order. Sink failures are logged, never returned.
func (a *Analyzer) AnalyzeBlock(ctx context.Context, block detect.Block) ([]detect.Signal, error) {
	signals, err := a.match(ctx, block)
	if err != nil {
		return nil, err
	}

	a.publish(ctx, signals)
	return signals, nil
}

// AnalyzeBlocks analyzes blocks in parallel and groups the signals by block number.
func (a *Analyzer) AnalyzeBlocks(ctx context.Context, blocks []detect.Block) (map[uint64][]detect.Signal, error) {
	results := make([][]detect.Signal, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(blockConcurrency)
	for i, block := range blocks {
		g.Go(func() error {
			signals, err := a.match(gctx, block)
			if err != nil {
				return fmt.Errorf("analyze block %d: %w", block.Number, err)
			}
			results[i] = signals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byBlock := make(map[uint64][]detect.Signal, len(blocks))
	var all []detect.Signal
	for i, block := range blocks {
		if _, ok := byBlock[block.Number]; !ok {
			byBlock[block.Number] = []detect.Signal{}
		}
		byBlock[block.Number] = append(byBlock[block.Number], results[i]...)
		all = append(all, results[i]...)
	}

	a.publish(ctx, all)
	return byBlock, nil
}

// AnalyzeBlockNumber fetches block number from the configured source and analyzes it.
func (a *Analyzer) AnalyzeBlockNumber(ctx context.Context, number uint64) ([]detect.Signal, error) {
	if a.source == nil {
		return nil, ErrNoBlockSource
	}

	block, err := a.source.FetchBlock(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("fetch block %d: %w: %w", number, ErrBlockSource, err)
	}

	return a.AnalyzeBlock(ctx, block)
}

func (a *Analyzer) StoredSignals(ctx context.Context, blockNumber uint64) ([]detect.Signal, error) {
	if a.store == nil {
		return nil, ErrNoSignalStore
	}

	signals, err := a.store.SignalsByBlock(ctx, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("load signals: %w", err)
	}
	return signals, nil
}

func (a *Analyzer) AddressVerdict(ctx context.Context, address string, history risk.History, signals []detect.Signal) (AddressVerdict, error) {
	result, err := a.screener.Check(ctx, address)
	if err != nil {
		return AddressVerdict{}, fmt.Errorf("screen address: %w", err)
	}
	addr := result.Address
	if addr == "" {
		addr = detect.NormalizeAddress(address)
	}

	score := a.RiskScore(addr, withSanctions(history, result))

	involved := []detect.Signal{}
	for _, s := range signals {
		if s.Involves(addr) {
			involved = append(involved, s)
		}
	}

	verdict := AddressVerdict{
		Address:     addr,
		Signals:     involved,
		RiskScore:   score,
		Sanctions:   result,
		Severity:    SeverityFor(result.IsSanctioned, score.Score, involved),
		GeneratedAt: TimeNow().UTC(),
	}

	a.logs.Infow("address verdict",
		"address", addr,
		"severity", verdict.Severity,
		"signals", len(involved),
		"risk_score", score.Score,
		"is_sanctioned", result.IsSanctioned)

	return verdict, nil
}

// TransactionVerdict screens the sender and recipient of tx and keeps the signals that
// reference its hash.
func (a *Analyzer) TransactionVerdict(ctx context.Context, tx detect.Transaction, signals []detect.Signal) (TransactionVerdict, error) {
	addresses := []string{tx.FromAddress()}
	if to := tx.ToAddress(); to != "" && to != addresses[0] {
		addresses = append(addresses, to)
	}

	results, err := a.screener.BatchCheck(ctx, addresses)
	if err != nil {
		return TransactionVerdict{}, fmt.Errorf("screen transaction parties: %w", err)
	}

	touching := []detect.Signal{}
	for _, s := range signals {
		if s.Touches(tx.Hash) {
			touching = append(touching, s)
		}
	}

	sanctioned := false
	for _, r := range results {
		sanctioned = sanctioned || r.IsSanctioned
	}

	return TransactionVerdict{
		TransactionHash: tx.Hash,
		Signals:         touching,
		Sanctions:       results,
		Severity:        SeverityFor(sanctioned, 0, touching),
		GeneratedAt:     TimeNow().UTC(),
	}, nil
}

func (a *Analyzer) RiskScore(address string, history risk.History) risk.Score {
	profile := a.extractor.Extract(detect.NormalizeAddress(address), history)
	return a.scorer.Score(profile)
}

func (a *Analyzer) Sanctions(ctx context.Context, address string) (sanctions.Result, error) {
	return a.screener.Check(ctx, address)
}

func (a *Analyzer) SanctionsBatch(ctx context.Context, addresses []string) ([]sanctions.Result, error) {
	return a.screener.BatchCheck(ctx, addresses)
}

func (a *Analyzer) SanctionsStatus(ctx context.Context, address string) (sanctions.State, error) {
	return a.screener.Status(ctx, address)
}

// Reload swaps in a new known-address configuration. An invalid configuration leaves
// the active one untouched.
func (a *Analyzer) Reload(known detect.KnownAddresses) error {
	if err := a.rules.Reload(known); err != nil {
		a.metrics.ConfigReload("error")
		return fmt.Errorf("reload rules: %w", err)
	}
	a.denylist.Replace(known.Sanctioned)

	a.metrics.KnownAddresses(known.SetSizes())
	a.metrics.ConfigReload("ok")

	if empty := known.EmptySets(); len(empty) > 0 {
		a.logs.Warnw("known-address sets are empty, detectors relying on them emit nothing",
			"version", known.Version,
			"sets", empty)
	}
	a.logs.Infow("known addresses loaded", "version", known.Version)
	return nil
}

func (a *Analyzer) Health() Health {
	return Health{
		Status:             "ok",
		RulesVersion:       a.rules.Version(),
		RiskModelAvailable: a.scorer.ModelAvailable(),
		Matchers:           len(a.matchers),
		Sinks:              len(a.sinks),
	}
}

func (a *Analyzer) match(ctx context.Context, block detect.Block) ([]detect.Signal, error) {
	perMatcher := make([][]detect.Signal, len(a.matchers))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range a.matchers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perMatcher[i] = m.Match(block)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	signals := []detect.Signal{}
	for _, found := range perMatcher {
		for _, s := range found {
			a.metrics.SignalEmitted(string(s.Type))
		}
		signals = append(signals, found...)
	}
	a.metrics.BlockAnalyzed()

	a.logs.Infow("block analyzed",
		"block", block.Number,
		"transactions", len(block.Transactions),
		"signals", len(signals))

	return signals, nil
}

func (a *Analyzer) publish(ctx context.Context, signals []detect.Signal) {
	if len(signals) == 0 || len(a.sinks) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, sink := range a.sinks {
		wg.Add(1)
		go func(sink SignalSink) {
			defer wg.Done()
			if err := sink.Publish(ctx, signals); err != nil {
				a.metrics.SinkFailure(sink.Name())
				a.logs.Errorw("failed to publish signals",
					"sink", sink.Name(),
					"count", len(signals),
					"error", err)
			}
		}(sink)
	}
	wg.Wait()
}

// withSanctions raises the sanctions feature to the screening confidence when the
// address is listed.
func withSanctions(h risk.History, result sanctions.Result) risk.History {
	if result.IsSanctioned && result.Confidence > h.SanctionsRiskScore {
		h.SanctionsRiskScore = result.Confidence
	}
	return h
}
