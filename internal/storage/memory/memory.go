// Package memory is the in-process listing cache used when no redis
// address is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"homzen/internal/logger"
	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/dgraph-io/ristretto"
	jsoniter "github.com/json-iterator/go"
)

const verifiedPropertiesKey = `properties:verified`

type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration

	mu         sync.Mutex
	generation int64
}

var _ storage.Cache = (*Cache)(nil)

func New(ttl time.Duration) (*Cache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Cache{cache: cache, ttl: ttl}, nil
}

func (c *Cache) Close() {
	c.cache.Close()
}

func (c *Cache) GetVerifiedProperties(ctx context.Context) ([]byte, error) {
	value, ok := c.cache.Get(verifiedPropertiesKey)
	if !ok {
		return nil, storage.ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, storage.ErrCacheMiss
	}

	return data, nil
}

func (c *Cache) Generation(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation, nil
}

// PutVerifiedProperties may be dropped by ristretto's admission policy;
// callers treat the cache as best effort.
func (c *Cache) PutVerifiedProperties(ctx context.Context, generation int64, properties []models.Property) error {
	data, err := jsoniter.Marshal(properties)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return storage.ErrCacheStale
	}

	if !c.cache.SetWithTTL(verifiedPropertiesKey, data, int64(len(data)), c.ttl) {
		logger.Log.Debugw("Cache rejected verified properties", "size", len(data))
	}

	return nil
}

func (c *Cache) DeleteVerifiedProperties(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.cache.Del(verifiedPropertiesKey)
}
