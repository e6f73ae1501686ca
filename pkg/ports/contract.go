package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTransformCacheContract runs a suite of tests to verify that a TransformCache
// implementation adheres to the defined interface contract.
func RunTransformCacheContract(t *testing.T, cache TransformCache) {
	ctx := context.Background()
	body := "ACGT" + time.Now().Format("150405")

	t.Run("Miss", func(t *testing.T) {
		_, found, err := cache.Get(ctx, domain.ToBWT, "missing-"+body)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put and Get", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, domain.ToBWT, body, "T$ACG"))

		out, found, err := cache.Get(ctx, domain.ToBWT, body)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "T$ACG", out)
	})

	t.Run("Directions are separate", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, domain.ToBWT, body, "forward"))
		require.NoError(t, cache.Put(ctx, domain.ToDNA, body, "inverse"))

		out, found, err := cache.Get(ctx, domain.ToDNA, body)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "inverse", out)

		out, _, err = cache.Get(ctx, domain.ToBWT, body)
		require.NoError(t, err)
		assert.Equal(t, "forward", out)
	})
}
