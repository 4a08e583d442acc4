package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"chainsentry/internal/core"
	"chainsentry/internal/core/fake"
	"chainsentry/internal/detect"
	detectfake "chainsentry/internal/detect/fake"
	"chainsentry/internal/metrics"
	"chainsentry/internal/risk"
	"chainsentry/internal/sanctions"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

const (
	bot    = "0x1111111111111111111111111111111111111111"
	victim = "0x2222222222222222222222222222222222222222"
	router = "0x7a250d5630b4cf539739df2c5dacb4c659f2488d"
)

var _ = Describe("Analyzer", func() {
	var (
		fakeSandwich *detectfake.Matcher
		fakeWhale    *detectfake.Matcher
		fakeRules    *fake.RuleSet
		fakeDenylist *fake.Denylist
		fakeScreener *fake.SanctionsScreener
		fakeScorer   *fake.RiskScorer
		fakeSource   *fake.BlockSource
		fakeStore    *fake.SignalStore
		fakeSink     *fake.SignalSink
		reg          *prometheus.Registry
		ctx          context.Context
		now          time.Time

		analyzer *core.Analyzer

		sandwich detect.Signal
		deposit  detect.Signal
		block    detect.Block
		fakeErr  error
	)

	BeforeEach(func() {
		fakeSandwich = new(detectfake.Matcher)
		fakeWhale = new(detectfake.Matcher)
		fakeRules = new(fake.RuleSet)
		fakeDenylist = new(fake.Denylist)
		fakeScreener = new(fake.SanctionsScreener)
		fakeScorer = new(fake.RiskScorer)
		fakeSource = new(fake.BlockSource)
		fakeStore = new(fake.SignalStore)
		fakeSink = new(fake.SignalSink)
		reg = prometheus.NewRegistry()
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }
		DeferCleanup(func() {
			core.TimeNow = time.Now
		})

		sandwich = detect.Signal{
			ID:                     "sig-sandwich",
			Type:                   detect.SignalSandwichAttack,
			Confidence:             0.6,
			BlockNumber:            100,
			TargetTransaction:      "0xvictim",
			SupportingTransactions: []string{"0xfront", "0xvictim", "0xback"},
			AddressesInvolved:      []string{bot, victim},
		}
		deposit = detect.Signal{
			ID:                "sig-deposit",
			Type:              detect.SignalExchangeDeposit,
			Confidence:        0.85,
			BlockNumber:       100,
			TargetTransaction: "0xdeposit",
			AddressesInvolved: []string{victim},
		}
		block = detect.Block{
			Number: 100,
			Transactions: []detect.Transaction{
				{Hash: "0xfront", From: bot, BlockNumber: 100},
			},
		}

		fakeSandwich.MatchReturns([]detect.Signal{sandwich})
		fakeWhale.MatchReturns([]detect.Signal{deposit})
		fakeSink.NameReturns("fake")
		fakeScorer.ModelAvailableReturns(true)
		fakeRules.VersionReturns("2024.1")
	})

	JustBeforeEach(func() {
		analyzer = core.NewAnalyzer(
			zap.NewNop().Sugar(),
			[]detect.Matcher{fakeSandwich, fakeWhale},
			fakeRules,
			fakeDenylist,
			fakeScreener,
			risk.NewFeatureExtractor(func() time.Time { return now }),
			fakeScorer,
			core.WithBlockSource(fakeSource),
			core.WithSignalStore(fakeStore),
			core.WithSinks(fakeSink),
			core.WithMetrics(metrics.New(reg)),
		)
	})

	Describe("AnalyzeBlock", func() {
		var (
			signals []detect.Signal
			err     error
		)

		JustBeforeEach(func() {
			signals, err = analyzer.AnalyzeBlock(ctx, block)
		})

		It("should merge matcher output in matcher order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(signals).To(Equal([]detect.Signal{sandwich, deposit}))
			Expect(fakeSandwich.MatchArgsForCall(0)).To(Equal(block))
			Expect(fakeWhale.MatchArgsForCall(0)).To(Equal(block))
		})

		It("should publish the signals to every sink", func() {
			Expect(fakeSink.PublishCallCount()).To(Equal(1))
			_, published := fakeSink.PublishArgsForCall(0)
			Expect(published).To(Equal([]detect.Signal{sandwich, deposit}))
		})

		It("should count emitted signals", func() {
			expected := `
# HELP chainsentry_signals_emitted_total Signals produced by the pattern matchers.
# TYPE chainsentry_signals_emitted_total counter
chainsentry_signals_emitted_total{type="EXCHANGE_DEPOSIT"} 1
chainsentry_signals_emitted_total{type="SANDWICH_ATTACK"} 1
`
			Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "chainsentry_signals_emitted_total")).To(Succeed())
		})

		When("a sink fails", func() {
			BeforeEach(func() {
				fakeSink.PublishReturns(fakeErr)
			})

			It("should still return the signals", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(signals).To(HaveLen(2))
			})
		})

		When("no matcher finds anything", func() {
			BeforeEach(func() {
				fakeSandwich.MatchReturns(nil)
				fakeWhale.MatchReturns(nil)
			})

			It("should return an empty, non-nil slice and skip the sinks", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(signals).NotTo(BeNil())
				Expect(signals).To(BeEmpty())
				Expect(fakeSink.PublishCallCount()).To(BeZero())
			})
		})

		When("the context is cancelled", func() {
			BeforeEach(func() {
				cancelled, cancel := context.WithCancel(context.Background())
				cancel()
				ctx = cancelled
			})

			It("should return the context error", func() {
				Expect(err).To(MatchError(context.Canceled))
				Expect(signals).To(BeNil())
				Expect(fakeSink.PublishCallCount()).To(BeZero())
			})
		})
	})

	Describe("AnalyzeBlocks", func() {
		It("should group signals by block number", func() {
			other := detect.Block{Number: 101}
			fakeSandwich.MatchCalls(func(b detect.Block) []detect.Signal {
				if b.Number == 101 {
					return nil
				}
				return []detect.Signal{sandwich}
			})
			fakeWhale.MatchReturns(nil)

			byBlock, err := analyzer.AnalyzeBlocks(ctx, []detect.Block{block, other})
			Expect(err).NotTo(HaveOccurred())
			Expect(byBlock).To(HaveLen(2))
			Expect(byBlock[100]).To(Equal([]detect.Signal{sandwich}))
			Expect(byBlock[101]).To(BeEmpty())
			Expect(fakeSink.PublishCallCount()).To(Equal(1))
		})
	})

	Describe("AnalyzeBlockNumber", func() {
		When("the block is fetched", func() {
			BeforeEach(func() {
				fakeSource.FetchBlockReturns(block, nil)
			})

			It("should analyze the fetched block", func() {
				signals, err := analyzer.AnalyzeBlockNumber(ctx, 100)
				Expect(err).NotTo(HaveOccurred())
				Expect(signals).To(HaveLen(2))
				_, number := fakeSource.FetchBlockArgsForCall(0)
				Expect(number).To(Equal(uint64(100)))
			})
		})

		When("fetching fails", func() {
			BeforeEach(func() {
				fakeSource.FetchBlockReturns(detect.Block{}, fakeErr)
			})

			It("should wrap the error", func() {
				_, err := analyzer.AnalyzeBlockNumber(ctx, 100)
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(core.ErrBlockSource))
				Expect(err).To(MatchError(ContainSubstring("fetch block 100")))
				Expect(fakeSandwich.MatchCallCount()).To(BeZero())
			})
		})

		When("no block source is configured", func() {
			It("should return ErrNoBlockSource", func() {
				bare := core.NewAnalyzer(zap.NewNop().Sugar(), nil, fakeRules, fakeDenylist,
					fakeScreener, risk.NewFeatureExtractor(nil), fakeScorer)
				_, err := bare.AnalyzeBlockNumber(ctx, 100)
				Expect(err).To(MatchError(core.ErrNoBlockSource))
			})
		})
	})

	Describe("StoredSignals", func() {
		It("should read from the store", func() {
			fakeStore.SignalsByBlockReturns([]detect.Signal{deposit}, nil)

			signals, err := analyzer.StoredSignals(ctx, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(signals).To(Equal([]detect.Signal{deposit}))
		})

		It("should wrap store errors", func() {
			fakeStore.SignalsByBlockReturns(nil, fakeErr)

			_, err := analyzer.StoredSignals(ctx, 100)
			Expect(err).To(MatchError("load signals: fake error"))
		})
	})

	Describe("AddressVerdict", func() {
		var (
			verdict core.AddressVerdict
			err     error
			history risk.History
		)

		BeforeEach(func() {
			history = risk.History{TransactionCount: 12}
			fakeScorer.ScoreCalls(func(p risk.Profile) risk.Score {
				return risk.Score{Address: p.Address, Score: 0.2, ModelAvailable: true}
			})
		})

		JustBeforeEach(func() {
			verdict, err = analyzer.AddressVerdict(ctx, victim, history, []detect.Signal{sandwich, deposit})
		})

		When("the address is clean", func() {
			BeforeEach(func() {
				fakeScreener.CheckReturns(sanctions.Result{Address: victim}, nil)
			})

			It("should combine signals, score and sanctions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Address).To(Equal(victim))
				Expect(verdict.Signals).To(Equal([]detect.Signal{sandwich, deposit}))
				Expect(verdict.RiskScore.Score).To(Equal(0.2))
				Expect(verdict.Sanctions.IsSanctioned).To(BeFalse())
				Expect(verdict.GeneratedAt).To(Equal(now))
			})

			It("should take the severity from the strongest signal", func() {
				Expect(verdict.Severity).To(Equal(core.SeverityCritical))
			})

			It("should score the extracted profile", func() {
				profile := fakeScorer.ScoreArgsForCall(0)
				Expect(profile.Address).To(Equal(victim))
				Expect(profile.Features.TransactionCount).To(Equal(12.0))
				Expect(profile.Features.SanctionsRiskScore).To(BeZero())
			})
		})

		When("the address is sanctioned", func() {
			BeforeEach(func() {
				fakeScreener.CheckReturns(sanctions.Result{
					Address:      victim,
					IsSanctioned: true,
					Lists:        []string{"OFAC_SDN"},
					Confidence:   0.95,
				}, nil)
			})

			It("should be critical and feed the screening confidence to the scorer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verdict.Severity).To(Equal(core.SeverityCritical))
				Expect(fakeScorer.ScoreArgsForCall(0).Features.SanctionsRiskScore).To(Equal(0.95))
			})
		})

		When("the address does not take part in any signal", func() {
			BeforeEach(func() {
				fakeScreener.CheckReturns(sanctions.Result{Address: router}, nil)
			})

			It("should keep only the involved signals", func() {
				v, err := analyzer.AddressVerdict(ctx, router, history, []detect.Signal{sandwich, deposit})
				Expect(err).NotTo(HaveOccurred())
				Expect(v.Signals).To(BeEmpty())
				Expect(v.Severity).To(Equal(core.SeverityLow))
			})
		})

		When("the address is invalid", func() {
			BeforeEach(func() {
				fakeScreener.CheckReturns(sanctions.Result{}, sanctions.ErrInvalidAddress)
			})

			It("should return the validation error", func() {
				Expect(err).To(MatchError(sanctions.ErrInvalidAddress))
				Expect(fakeScorer.ScoreCallCount()).To(BeZero())
			})
		})
	})

	Describe("TransactionVerdict", func() {
		var tx detect.Transaction

		BeforeEach(func() {
			to := router
			tx = detect.Transaction{Hash: "0xvictim", From: victim, To: &to}
			fakeScreener.BatchCheckCalls(func(_ context.Context, addresses []string) ([]sanctions.Result, error) {
				results := make([]sanctions.Result, len(addresses))
				for i, a := range addresses {
					results[i] = sanctions.Result{Address: a}
				}
				return results, nil
			})
		})

		It("should screen both parties and keep the touching signals", func() {
			verdict, err := analyzer.TransactionVerdict(ctx, tx, []detect.Signal{sandwich, deposit})
			Expect(err).NotTo(HaveOccurred())
			Expect(verdict.TransactionHash).To(Equal("0xvictim"))
			Expect(verdict.Signals).To(Equal([]detect.Signal{sandwich}))
			Expect(verdict.Sanctions).To(HaveLen(2))
			Expect(verdict.Severity).To(Equal(core.SeverityHigh))

			_, addresses := fakeScreener.BatchCheckArgsForCall(0)
			Expect(addresses).To(Equal([]string{victim, router}))
		})

		It("should only screen the sender of a contract creation", func() {
			tx.To = nil
			_, err := analyzer.TransactionVerdict(ctx, tx, nil)
			Expect(err).NotTo(HaveOccurred())

			_, addresses := fakeScreener.BatchCheckArgsForCall(0)
			Expect(addresses).To(Equal([]string{victim}))
		})

		It("should escalate when a party is sanctioned", func() {
			fakeScreener.BatchCheckReturns([]sanctions.Result{{Address: victim, IsSanctioned: true}, {Address: router}}, nil)

			verdict, err := analyzer.TransactionVerdict(ctx, tx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(verdict.Severity).To(Equal(core.SeverityCritical))
		})

		It("should fail when screening fails", func() {
			fakeScreener.BatchCheckReturns(nil, sanctions.ErrInvalidAddress)

			_, err := analyzer.TransactionVerdict(ctx, tx, nil)
			Expect(err).To(MatchError(sanctions.ErrInvalidAddress))
		})
	})

	Describe("Reload", func() {
		var known detect.KnownAddresses

		BeforeEach(func() {
			known = detect.KnownAddresses{
				Version:    "2024.2",
				Sanctioned: []string{victim},
				Thresholds: detect.DefaultThresholds(),
			}
		})

		It("should swap rules and denylist", func() {
			Expect(analyzer.Reload(known)).To(Succeed())
			Expect(fakeRules.ReloadArgsForCall(0)).To(Equal(known))
			Expect(fakeDenylist.ReplaceArgsForCall(0)).To(Equal([]string{victim}))
		})

		It("should keep the denylist when the rules are rejected", func() {
			fakeRules.ReloadReturns(fakeErr)

			Expect(analyzer.Reload(known)).To(MatchError("reload rules: fake error"))
			Expect(fakeDenylist.ReplaceCallCount()).To(BeZero())
		})
	})

	Describe("Health", func() {
		It("should report the active configuration", func() {
			Expect(analyzer.Health()).To(Equal(core.Health{
				Status:             "ok",
				RulesVersion:       "2024.1",
				RiskModelAvailable: true,
				Matchers:           2,
				Sinks:              1,
			}))
		})
	})
})

var _ = DescribeTable("SeverityFor",
	func(sanctioned bool, score float64, confidences []float64, expected core.Severity) {
		signals := make([]detect.Signal, len(confidences))
		for i, c := range confidences {
			signals[i] = detect.Signal{Confidence: c}
		}
		Expect(core.SeverityFor(sanctioned, score, signals)).To(Equal(expected))
	},
	Entry("nothing notable", false, 0.05, nil, core.SeverityInfo),
	Entry("low score", false, 0.2, nil, core.SeverityLow),
	Entry("medium score", false, 0.45, nil, core.SeverityMedium),
	Entry("signal outweighs score", false, 0.2, []float64{0.7}, core.SeverityHigh),
	Entry("strong signal", false, 0.1, []float64{0.3, 0.9}, core.SeverityCritical),
	Entry("sanctioned overrides everything", true, 0.0, nil, core.SeverityCritical),
	Entry("sanctioned with weak signals", true, 0.05, []float64{0.1}, core.SeverityCritical),
)
