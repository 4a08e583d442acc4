package sanctions_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainsentry/internal/sanctions"
	"chainsentry/internal/sanctions/fake"

	"github.com/redis/go-redis/v9"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("MemoryCache", func() {
	var (
		cache *sanctions.MemoryCache
		ctx   context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		cache = sanctions.NewMemoryCache(32, time.Hour)
	})

	It("should return what was stored", func() {
		res := sanctions.Result{Address: "0xabc", IsSanctioned: true, Lists: []string{"OFAC SDN"}}
		cache.Set(ctx, res)

		got, ok := cache.Get(ctx, "0xabc")
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(res))

		_, ok = cache.Get(ctx, "0xdef")
		Expect(ok).To(BeFalse())
	})

	It("should stay bounded", func() {
		for i := 0; i < 1000; i++ {
			cache.Set(ctx, sanctions.Result{Address: fmt.Sprintf("0x%040x", i)})
		}
		Expect(cache.Len()).To(BeNumerically("<=", 32))
	})

	It("should evict entries after the retention period", func() {
		short := sanctions.NewMemoryCache(32, 20*time.Millisecond)
		short.Set(ctx, sanctions.Result{Address: "0xabc"})
		Eventually(func() bool {
			_, ok := short.Get(ctx, "0xabc")
			return ok
		}).Should(BeFalse())
	})
})

var _ = Describe("RedisCache", func() {
	var (
		cache  *sanctions.RedisCache
		client *fake.RedisClient
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = new(fake.RedisClient)
		client.SetReturns(redis.NewStatusResult("OK", nil))
		cache = sanctions.NewRedisCache(zap.NewNop().Sugar(), client, 48*time.Hour)
	})

	It("should store results as JSON under a prefixed key", func() {
		cache.Set(ctx, sanctions.Result{Address: "0xabc", Confidence: 0.5})

		Expect(client.SetCallCount()).To(Equal(1))
		_, key, value, expiration := client.SetArgsForCall(0)
		Expect(key).To(Equal("chainsentry:sanctions:0xabc"))
		Expect(string(value.([]byte))).To(ContainSubstring(`"confidenceScore":0.5`))
		Expect(expiration).To(Equal(48 * time.Hour))
	})

	It("should decode stored results", func() {
		client.GetReturns(redis.NewStringResult(`{"address":"0xabc","isSanctioned":true,"lists":["UN"]}`, nil))

		got, ok := cache.Get(ctx, "0xabc")
		Expect(ok).To(BeTrue())
		Expect(got.IsSanctioned).To(BeTrue())
		Expect(got.Lists).To(Equal([]string{"UN"}))
	})

	It("should treat missing keys as misses", func() {
		client.GetReturns(redis.NewStringResult("", redis.Nil))
		_, ok := cache.Get(ctx, "0xabc")
		Expect(ok).To(BeFalse())
	})

	It("should treat redis failures and corrupt entries as misses", func() {
		client.GetReturnsOnCall(0, redis.NewStringResult("", errors.New("connection refused")))
		client.GetReturnsOnCall(1, redis.NewStringResult("{", nil))

		_, ok := cache.Get(ctx, "0xabc")
		Expect(ok).To(BeFalse())
		_, ok = cache.Get(ctx, "0xabc")
		Expect(ok).To(BeFalse())
	})
})
