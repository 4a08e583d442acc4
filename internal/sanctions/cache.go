package sanctions

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheShards = 16

// MemoryCache is a bounded in-process cache split into independently locked shards.
// Entries are evicted after retention or when their shard is full.
type MemoryCache struct {
	shards []*expirable.LRU[string, Result]
}

func NewMemoryCache(size int, retention time.Duration) *MemoryCache {
	perShard := max(1, size/cacheShards)
	shards := make([]*expirable.LRU[string, Result], cacheShards)
	for i := range shards {
		shards[i] = expirable.NewLRU[string, Result](perShard, nil, retention)
	}
	return &MemoryCache{
		shards: shards,
	}
}

func (c *MemoryCache) Get(_ context.Context, address string) (Result, bool) {
	return c.shard(address).Get(address)
}

func (c *MemoryCache) Set(_ context.Context, result Result) {
	c.shard(result.Address).Add(result.Address, result)
}

func (c *MemoryCache) Len() int {
	var n int
	for _, s := range c.shards {
		n += s.Len()
	}
	return n
}

func (c *MemoryCache) shard(address string) *expirable.LRU[string, Result] {
	return c.shards[xxhash.Sum64String(address)%cacheShards]
}
