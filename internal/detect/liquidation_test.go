package detect_test

import (
	"chainsentry/internal/detect"

	"github.com/ethereum/go-ethereum/common/hexutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LiquidationMatcher", func() {
	const liquidator = "0x000000000000000000000000000000000000c001"

	var (
		matcher *detect.LiquidationMatcher
		block   detect.Block
		signals []detect.Signal
	)

	BeforeEach(func() {
		classifier, err := detect.NewClassifier(testKnownAddresses())
		Expect(err).NotTo(HaveOccurred())
		matcher = detect.NewLiquidationMatcher(classifier)
		block = detect.Block{Number: 42}
	})

	JustBeforeEach(func() {
		signals = matcher.Match(block)
	})

	When("a transaction calls a known lending pool", func() {
		BeforeEach(func() {
			block.Transactions = []detect.Transaction{
				newTx("0xl1", liquidator, aaveV2Pool, 80, 0, 3),
				newTx("0xn1", "0xaa", pool, 80, 0, 4),
			}
		})

		It("should emit a liquidation with the resolved protocol", func() {
			Expect(signals).To(HaveLen(1))
			s := signals[0]
			Expect(s.Type).To(Equal(detect.SignalLiquidation))
			Expect(s.Confidence).To(Equal(0.9))
			Expect(s.ProfitEstimateEth).To(Equal(0.1))
			Expect(s.TargetTransaction).To(Equal("0xl1"))
			Expect(s.AddressesInvolved).To(Equal([]string{liquidator, aaveV2Pool}))
			Expect(s.Metadata.Liquidation.Protocol).To(Equal("aave_v2"))
			Expect(s.Metadata.Liquidation.MatchedBy).To(Equal("contract"))
		})
	})

	When("only the selector matches", func() {
		BeforeEach(func() {
			tx := newTx("0xl2", liquidator, pool, 80, 0, 0)
			tx.Input = hexutil.MustDecode("0x00a718a90000")
			block.Transactions = []detect.Transaction{tx}
		})

		It("should report an unknown protocol", func() {
			Expect(signals).To(HaveLen(1))
			Expect(signals[0].Metadata.Liquidation.Protocol).To(Equal("unknown"))
			Expect(signals[0].Metadata.Liquidation.MatchedBy).To(Equal("selector"))
		})
	})

	When("nothing looks like a liquidation", func() {
		BeforeEach(func() {
			block.Transactions = []detect.Transaction{newTx("0xn1", "0xaa", pool, 80, 0, 0)}
		})

		It("should emit nothing", func() {
			Expect(signals).To(BeEmpty())
		})
	})
})
