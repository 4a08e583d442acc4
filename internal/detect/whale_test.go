package detect_test

import (
	"fmt"

	"chainsentry/internal/detect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WhaleMatcher", func() {
	const (
		whale  = "0x000000000000000000000000000000000000d001"
		friend = "0x000000000000000000000000000000000000d002"
	)

	var (
		matcher *detect.WhaleMatcher
		block   detect.Block
		signals []detect.Signal
	)

	transfers := func(from, to string, n int, valueEth float64) []detect.Transaction {
		txs := make([]detect.Transaction, 0, n)
		for i := 0; i < n; i++ {
			txs = append(txs, newTx(fmt.Sprintf("0x%s%d", from[len(from)-2:], i), from, to, 30, valueEth, uint64(i)))
		}
		return txs
	}

	BeforeEach(func() {
		classifier, err := detect.NewClassifier(testKnownAddresses())
		Expect(err).NotTo(HaveOccurred())
		matcher = detect.NewWhaleMatcher(classifier)
		block = detect.Block{Number: 7}
	})

	JustBeforeEach(func() {
		signals = matcher.Match(block)
	})

	When("an address receives several transfers from an exchange", func() {
		BeforeEach(func() {
			block.Transactions = transfers(binanceHot, whale, 4, 20)
		})

		It("should emit a single accumulation", func() {
			Expect(signals).To(HaveLen(1))
			s := signals[0]
			Expect(s.Type).To(Equal(detect.SignalAccumulation))
			Expect(s.Confidence).To(Equal(0.8))
			Expect(s.ValueEth).To(BeNumerically("~", 80, 1e-9))
			Expect(s.ProfitEstimateEth).To(BeNumerically("~", 80, 1e-9))
			Expect(s.Metadata.Whale.TransactionCount).To(Equal(4))
			Expect(s.Metadata.Whale.AverageValueEth).To(BeNumerically("~", 20, 1e-9))
			Expect(s.Metadata.Whale.Exchange).To(Equal("binance"))
			Expect(s.AddressesInvolved).To(Equal([]string{whale, binanceHot}))
			Expect(s.SupportingTransactions).To(HaveLen(3))
		})
	})

	When("an address sends several transfers to an exchange", func() {
		BeforeEach(func() {
			block.Transactions = transfers(whale, coinbaseHot, 3, 25)
		})

		It("should emit a distribution", func() {
			Expect(signals).To(HaveLen(1))
			Expect(signals[0].Type).To(Equal(detect.SignalDistribution))
			Expect(signals[0].Metadata.Whale.Direction).To(Equal("outgoing"))
		})
	})

	When("the group has no exchange counterparty", func() {
		BeforeEach(func() {
			block.Transactions = transfers(friend, whale, 4, 20)
		})

		It("should emit nothing", func() {
			Expect(signals).To(BeEmpty())
		})
	})

	When("the group is too small", func() {
		BeforeEach(func() {
			block.Transactions = transfers(binanceHot, whale, 2, 40)
		})

		It("should emit nothing", func() {
			Expect(signals).To(BeEmpty())
		})
	})

	When("the group value is not above the threshold", func() {
		BeforeEach(func() {
			block.Transactions = transfers(binanceHot, whale, 5, 10)
		})

		It("should emit nothing", func() {
			Expect(signals).To(BeEmpty())
		})
	})

	Describe("single large transfers", func() {
		It("should classify deposits, withdrawals and plain transfers", func() {
			cases := []struct {
				from, to string
				want     detect.SignalType
			}{
				{whale, binanceHot, detect.SignalExchangeDeposit},
				{coinbaseHot, whale, detect.SignalExchangeWithdrawal},
				{whale, friend, detect.SignalLargeTransfer},
			}
			for _, c := range cases {
				got := matcher.Match(detect.Block{Transactions: []detect.Transaction{newTx("0x1", c.from, c.to, 30, 150, 0)}})
				Expect(got).To(HaveLen(1))
				Expect(got[0].Type).To(Equal(c.want))
				Expect(got[0].ValueEth).To(BeNumerically("~", 150, 1e-9))
			}
		})

		It("should ignore movements between exchanges", func() {
			got := matcher.Match(detect.Block{Transactions: []detect.Transaction{newTx("0x1", binanceHot, coinbaseHot, 30, 500, 0)}})
			Expect(got).To(BeEmpty())
		})

		It("should ignore transfers at the threshold", func() {
			got := matcher.Match(detect.Block{Transactions: []detect.Transaction{newTx("0x1", whale, friend, 30, 100, 0)}})
			Expect(got).To(BeEmpty())
		})
	})

	It("should never estimate a negative profit", func() {
		mixed := detect.Block{Transactions: append(transfers(binanceHot, whale, 4, 20), newTx("0xbig", whale, friend, 30, 1000, 9))}
		for _, s := range matcher.Match(mixed) {
			Expect(s.ProfitEstimateEth).To(BeNumerically(">=", 0))
		}
	})
})
