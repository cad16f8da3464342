package redis

import (
	"context"
	"errors"
	"time"

	"homzen/internal/logger"
	"homzen/internal/models"
	"homzen/internal/storage"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const (
	verifiedPropertiesKey = `properties:verified`
	generationKey         = `properties:verified:generation`
)

type RedisCache struct {
	Client *redis.Client
	ttl    time.Duration
}

var _ storage.Cache = (*RedisCache)(nil)

func New(ctx context.Context, addr string, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &RedisCache{Client: client, ttl: ttl}, nil
}

func (r *RedisCache) Close() error {
	return r.Client.Close()
}

func (r *RedisCache) Generation(ctx context.Context) (int64, error) {
	generation, err := r.Client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return generation, err
}

// PutVerifiedProperties writes the listing under WATCH on the generation
// key, so a concurrent invalidation aborts the write.
func (r *RedisCache) PutVerifiedProperties(ctx context.Context, generation int64, properties []models.Property) error {
	jsonProperties, err := jsoniter.Marshal(properties)
	if err != nil {
		logger.Log.Errorw("Failed to marshal properties", "err", err)
		return err
	}

	err = r.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return storage.ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, verifiedPropertiesKey, jsonProperties, r.ttl)
			return nil
		})
		return err
	}, generationKey)

	if errors.Is(err, redis.TxFailedErr) {
		return storage.ErrCacheStale
	}
	if err != nil {
		if !errors.Is(err, storage.ErrCacheStale) {
			logger.Log.Errorw("Failed to set properties in cache", "err", err)
		}
		return err
	}

	logger.Log.Debugw("Cached verified properties", "key", verifiedPropertiesKey, "count", len(properties))

	return nil
}

func (r *RedisCache) GetVerifiedProperties(ctx context.Context) ([]byte, error) {
	data, err := r.Client.Get(ctx, verifiedPropertiesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrCacheMiss
	}
	if err != nil {
		logger.Log.Errorw("Failed to get properties from the cache", "err", err)
		return nil, err
	}

	return data, nil
}

func (r *RedisCache) DeleteVerifiedProperties(ctx context.Context) {
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, verifiedPropertiesKey)
		return nil
	})
	if err != nil {
		logger.Log.Warnw("Error deleting key", "key", verifiedPropertiesKey, "err", err)
	} else {
		logger.Log.Debugw("Key deleted", "key", verifiedPropertiesKey)
	}
}
