package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/bwtnet/pkg/adapters/redis"
	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/aretw0/bwtnet/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client)
	ports.RunTransformCacheContract(t, cache)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.New(mr.Addr(), "", 0, redis.WithTTL(time.Minute))
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, domain.ToBWT, "ACGT", "T$ACG"))

	_, found, err := cache.Get(ctx, domain.ToBWT, "ACGT")
	require.NoError(t, err)
	assert.True(t, found)

	mr.FastForward(2 * time.Minute)

	_, found, err = cache.Get(ctx, domain.ToBWT, "ACGT")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.New(mr.Addr(), "", 0, redis.WithPrefix("test:"))
	defer cache.Close()

	require.NoError(t, cache.Ping(context.Background()))
	require.NoError(t, cache.Put(context.Background(), domain.ToDNA, "T$ACG", "ACGT$"))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Regexp(t, `^test:<:[0-9a-f]{64}$`, keys[0])
}

func TestRedisCache_BackendDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	cache := redis.New(addr, "", 0)
	defer cache.Close()

	_, found, err := cache.Get(context.Background(), domain.ToBWT, "ACGT")
	assert.Error(t, err)
	assert.False(t, found)
}
