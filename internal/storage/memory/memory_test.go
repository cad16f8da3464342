package memory

import (
	"context"
	"testing"
	"time"

	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := New(time.Minute)
	assert.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()

	_, err = cache.GetVerifiedProperties(ctx)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	generation, err := cache.Generation(ctx)
	assert.NoError(t, err)

	properties := []models.Property{{Id: "p1", Title: "Loft"}}
	assert.NoError(t, cache.PutVerifiedProperties(ctx, generation, properties))

	// ristretto applies sets asynchronously
	assert.Eventually(t, func() bool {
		_, err := cache.GetVerifiedProperties(ctx)
		return err == nil
	}, time.Second, 10*time.Millisecond)

	data, err := cache.GetVerifiedProperties(ctx)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"title":"Loft"`)

	cache.DeleteVerifiedProperties(ctx)

	_, err = cache.GetVerifiedProperties(ctx)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)
}

func TestCacheRefusesFillAfterInvalidation(t *testing.T) {
	cache, err := New(time.Minute)
	assert.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()

	// a reader samples the generation, then a writer invalidates before the fill lands
	generation, err := cache.Generation(ctx)
	assert.NoError(t, err)

	cache.DeleteVerifiedProperties(ctx)

	err = cache.PutVerifiedProperties(ctx, generation, []models.Property{{Id: "p1", Title: "Rejected"}})
	assert.ErrorIs(t, err, storage.ErrCacheStale)

	_, err = cache.GetVerifiedProperties(ctx)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	current, err := cache.Generation(ctx)
	assert.NoError(t, err)
	assert.Equal(t, generation+1, current)
	assert.NoError(t, cache.PutVerifiedProperties(ctx, current, []models.Property{{Id: "p2"}}))
}
