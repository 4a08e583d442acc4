package config_test

import (
	"os"
	"path/filepath"
	"time"

	"chainsentry/internal/config"
	"chainsentry/internal/detect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Known addresses", func() {
	Describe("DefaultKnownAddresses", func() {
		It("should load the embedded sets", func() {
			known, err := config.DefaultKnownAddresses()
			Expect(err).NotTo(HaveOccurred())
			Expect(known.DEXRouters).To(ContainElement("0x7a250d5630b4cf539739df2c5dacb4c659f2488d"))
			Expect(known.LiquidationContracts).To(HaveKeyWithValue("0x7d2768de32b0b80b7a3454c06bdac94a69ddc7a9", "aave_v2"))
			Expect(known.Sanctioned).NotTo(BeEmpty())
			Expect(known.Thresholds).To(Equal(detect.DefaultThresholds()))
			Expect(known.EmptySets()).To(BeEmpty())

			_, err = detect.NewClassifier(known)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("ParseKnownAddresses", func() {
		It("should keep default thresholds that are not overridden", func() {
			known, err := config.ParseKnownAddresses([]byte(`
version: "custom"
exchanges:
  "0xabc": "okx"
thresholds:
  version: "custom-1"
  whale_group_value_eth: 75
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(known.Thresholds.WhaleGroupValueEth).To(Equal(75.0))
			Expect(known.Thresholds.MEVGasPriceGwei).To(Equal(200.0))
			Expect(known.EmptySets()).To(ContainElement("dex_routers"))
		})

		It("should reject unknown keys", func() {
			_, err := config.ParseKnownAddresses([]byte("dex_rooters: []\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should reject invalid thresholds", func() {
			_, err := config.ParseKnownAddresses([]byte("thresholds:\n  whale_confidence: 3\n"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Watcher", func() {
		var (
			path    string
			applied []detect.KnownAddresses
			watcher *config.Watcher
		)

		write := func(body string, mod time.Time) {
			Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())
			Expect(os.Chtimes(path, mod, mod)).To(Succeed())
		}

		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "known.yaml")
			applied = nil
			write("version: \"one\"\n", time.Unix(1_700_000_000, 0))
			watcher = config.NewWatcher(zap.NewNop().Sugar(), path, time.Second, func(k detect.KnownAddresses) error {
				applied = append(applied, k)
				return nil
			})
		})

		It("should apply the file once per change", func() {
			changed, err := watcher.Poll()
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			changed, err = watcher.Poll()
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())

			write("version: \"two\"\n", time.Unix(1_700_000_100, 0))
			changed, err = watcher.Poll()
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			Expect(applied).To(HaveLen(2))
			Expect(applied[1].Version).To(Equal("two"))
		})

		It("should keep the last good version when the file breaks", func() {
			_, err := watcher.Poll()
			Expect(err).NotTo(HaveOccurred())

			write("version: [\n", time.Unix(1_700_000_200, 0))
			_, err = watcher.Poll()
			Expect(err).To(HaveOccurred())
			Expect(applied).To(HaveLen(1))
		})
	})
})
