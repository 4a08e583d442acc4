package sanctions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "chainsentry:sanctions:"

// RedisCache shares screening results between instances. Redis failures are
// logged and read as misses.
type RedisCache struct {
	logs      *zap.SugaredLogger
	client    RedisClient
	retention time.Duration
}

func NewRedisCache(logger *zap.SugaredLogger, client RedisClient, retention time.Duration) *RedisCache {
	return &RedisCache{
		logs:      logger,
		client:    client,
		retention: retention,
	}
}

func (c *RedisCache) Get(ctx context.Context, address string) (Result, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return Result{}, false
	}
	if err != nil {
		c.logs.Warnw("redis cache read failed",
			"address", address,
			"error", err)
		return Result{}, false
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logs.Warnw("redis cache entry is corrupt",
			"address", address,
			"error", err)
		return Result{}, false
	}
	return result, true
}

func (c *RedisCache) Set(ctx context.Context, result Result) {
	b, err := json.Marshal(result)
	if err != nil {
		c.logs.Errorw("failed to encode sanctions result",
			"address", result.Address,
			"error", err)
		return
	}

	if err := c.client.Set(ctx, redisKeyPrefix+result.Address, b, c.retention).Err(); err != nil {
		c.logs.Warnw("redis cache write failed",
			"address", result.Address,
			"error", err)
	}
}
