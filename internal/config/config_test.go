package config_test

import (
	"os"
	"time"

	"chainsentry/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("App", func() {
	var (
		app config.App
		err error
	)

	setEnv := func(key, value string) {
		GinkgoT().Setenv(key, value)
	}

	BeforeEach(func() {
		for _, key := range []string{"API_PORT", "ETH_NODE_URL", "KAFKA_BROKERS", "KAFKA_TOPIC", "SANCTIONS_CACHE_TTL", "SANCTIONS_CACHE_SIZE", "LOG_LEVEL"} {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only the port is set", func() {
		BeforeEach(func() {
			setEnv("API_PORT", "8080")
		})

		It("should fill in defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.LogLevel).To(Equal("info"))
			Expect(app.CacheTTL).To(Equal(24 * time.Hour))
			Expect(app.ProviderTimeout).To(Equal(10 * time.Second))
			Expect(app.KafkaBrokers).To(BeEmpty())
			Expect(app.NodeURL).To(BeEmpty())
		})
	})

	When("the port is missing", func() {
		It("should fail", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("API_PORT"))
		})
	})

	When("optional values are set", func() {
		BeforeEach(func() {
			setEnv("API_PORT", "9000")
			setEnv("ETH_NODE_URL", "https://mainnet.example.org/v3/key")
			setEnv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
			setEnv("SANCTIONS_CACHE_TTL", "12h")
			setEnv("SANCTIONS_CACHE_SIZE", "500")
		})

		It("should parse them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.KafkaBrokers).To(Equal([]string{"kafka-1:9092", "kafka-2:9092"}))
			Expect(app.KafkaTopic).To(Equal("chainsentry.signals"))
			Expect(app.CacheTTL).To(Equal(12 * time.Hour))
			Expect(app.CacheSize).To(Equal(500))
		})
	})

	When("a value is malformed", func() {
		BeforeEach(func() {
			setEnv("API_PORT", "9000")
			setEnv("SANCTIONS_CACHE_TTL", "tomorrow")
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("validation fails", func() {
		BeforeEach(func() {
			setEnv("API_PORT", "http")
			setEnv("LOG_LEVEL", "chatty")
		})

		It("should report the invalid fields", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validate config"))
		})
	})
})

var _ = Describe("LookupJWTSecret", func() {
	It("should return the configured secret", func() {
		GinkgoT().Setenv("JWT_SECRET", "s3cret")

		secret, err := config.LookupJWTSecret()
		Expect(err).NotTo(HaveOccurred())
		Expect(secret).To(Equal("s3cret"))
	})

	It("should fail when the secret is blank", func() {
		GinkgoT().Setenv("JWT_SECRET", "")

		_, err := config.LookupJWTSecret()
		Expect(err).To(MatchError(ContainSubstring("JWT_SECRET")))
	})
})
