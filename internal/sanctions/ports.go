package sanctions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Provider is one external screening service. Check must honor ctx.
//
//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	Name() string
	Check(ctx context.Context, address string) (ProviderResult, error)
}

// Cache stores results by address. Freshness is decided by the Screener from LastChecked.
//
//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	Get(ctx context.Context, address string) (Result, bool)
	Set(ctx context.Context, result Result)
}

//counterfeiter:generate -o fake -fake-name RedisClient . RedisClient
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}
