package detect_test

import (
	"math/big"

	"chainsentry/internal/detect"

	"github.com/ethereum/go-ethereum/common/hexutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Classifier", func() {
	var (
		classifier *detect.Classifier
		known      detect.KnownAddresses
		err        error
	)

	BeforeEach(func() {
		known = testKnownAddresses()
	})

	JustBeforeEach(func() {
		classifier, err = detect.NewClassifier(known)
	})

	Describe("Classify", func() {
		It("should flag cheap transactions as victim candidates", func() {
			Expect(err).NotTo(HaveOccurred())
			c := classifier.Classify(newTx("0x1", "0xaa", pool, 20, 1, 0))
			Expect(c.IsVictimCandidate).To(BeTrue())
			Expect(c.IsMEVCandidate).To(BeFalse())
			Expect(c.IsLiquidation).To(BeFalse())
		})

		It("should flag DEX router calls as victim candidates regardless of gas", func() {
			c := classifier.Classify(newTx("0x1", "0xaa", "0x7A250D5630B4CF539739DF2C5DACB4C659F2488D", 120, 1, 0))
			Expect(c.IsVictimCandidate).To(BeTrue())
		})

		It("should flag expensive transactions as MEV candidates", func() {
			c := classifier.Classify(newTx("0x1", "0xaa", pool, 250, 0, 0))
			Expect(c.IsMEVCandidate).To(BeTrue())
			Expect(c.IsVictimCandidate).To(BeFalse())
		})

		It("should flag known bots as MEV candidates", func() {
			c := classifier.Classify(newTx("0x1", knownBot, pool, 100, 0, 0))
			Expect(c.IsMEVCandidate).To(BeTrue())
		})

		It("should flag flash loan calldata as MEV", func() {
			tx := newTx("0x1", "0xaa", pool, 100, 0, 0)
			tx.Input = hexutil.MustDecode("0xab9c4b5d0000000000000000")
			Expect(classifier.Classify(tx).IsMEVCandidate).To(BeTrue())
		})

		It("should flag liquidation contracts and selectors", func() {
			Expect(classifier.Classify(newTx("0x1", "0xaa", aaveV2Pool, 100, 0, 0)).IsLiquidation).To(BeTrue())

			tx := newTx("0x2", "0xaa", pool, 100, 0, 0)
			tx.Input = hexutil.MustDecode("0x00a718a9")
			Expect(classifier.Classify(tx).IsLiquidation).To(BeTrue())
		})

		It("should tolerate missing fields", func() {
			c := classifier.Classify(detect.Transaction{})
			Expect(c.IsVictimCandidate).To(BeTrue())
			Expect(c.IsMEVCandidate).To(BeFalse())
			Expect(c.IsLiquidation).To(BeFalse())
		})

		It("should ignore input shorter than a selector", func() {
			tx := newTx("0x1", "0xaa", pool, 100, 0, 0)
			tx.Input = []byte{0x00, 0xa7}
			Expect(classifier.Classify(tx).IsLiquidation).To(BeFalse())
		})
	})

	Describe("Reload", func() {
		It("should apply new thresholds without rebuilding", func() {
			tx := detect.Transaction{GasPriceWei: big.NewInt(60_000_000_000)}
			Expect(classifier.Classify(tx).IsVictimCandidate).To(BeFalse())

			updated := testKnownAddresses()
			updated.Thresholds.VictimGasPriceGwei = 70
			Expect(classifier.Reload(updated)).To(Succeed())
			Expect(classifier.Classify(tx).IsVictimCandidate).To(BeTrue())
		})

		It("should keep the previous rules when the new set is invalid", func() {
			broken := testKnownAddresses()
			broken.FlashLoanSelectors = []string{"0xzz"}
			Expect(classifier.Reload(broken)).NotTo(Succeed())
			Expect(classifier.Version()).To(Equal("test"))
		})

		It("should leave a snapshot taken before the reload untouched", func() {
			snapshot := classifier.Snapshot()
			to := binanceHot
			tx := detect.Transaction{
				GasPriceWei: big.NewInt(60_000_000_000),
				To:          &to,
			}

			updated := testKnownAddresses()
			updated.Version = "next"
			updated.Thresholds.VictimGasPriceGwei = 70
			updated.Exchanges = map[string]string{}
			Expect(classifier.Reload(updated)).To(Succeed())

			Expect(snapshot.Version()).To(Equal("test"))
			Expect(snapshot.Thresholds().VictimGasPriceGwei).To(Equal(detect.DefaultThresholds().VictimGasPriceGwei))
			Expect(snapshot.Classify(tx).IsVictimCandidate).To(BeFalse())
			_, ok := snapshot.ExchangeName(binanceHot)
			Expect(ok).To(BeTrue())

			Expect(classifier.Version()).To(Equal("next"))
			Expect(classifier.Classify(tx).IsVictimCandidate).To(BeTrue())
			Expect(classifier.IsExchange(binanceHot)).To(BeFalse())
		})
	})

	When("a selector has the wrong length", func() {
		BeforeEach(func() {
			known.LiquidationSelectors = []string{"0x00a718"}
		})

		It("should fail to build", func() {
			Expect(err).To(HaveOccurred())
			Expect(classifier).To(BeNil())
		})
	})

	When("the tie break is unknown", func() {
		BeforeEach(func() {
			known.Thresholds.SandwichTieBreak = "random"
		})

		It("should fail validation", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("lookups", func() {
		It("should resolve protocols and exchanges case-insensitively", func() {
			p, ok := classifier.ProtocolFor("0x7D2768dE32b0b80b7a3454c06BdAc94A69DDc7A9")
			Expect(ok).To(BeTrue())
			Expect(p).To(Equal("aave_v2"))
			Expect(classifier.IsExchange(binanceHot)).To(BeTrue())
			Expect(classifier.IsExchange(pool)).To(BeFalse())
		})
	})

	Describe("EmptySets", func() {
		It("should list sets without entries", func() {
			Expect(detect.KnownAddresses{}.EmptySets()).To(ContainElements("dex_routers", "exchanges", "sanctioned"))
			Expect(known.EmptySets()).To(ConsistOf("sanctioned"))
		})
	})
})
