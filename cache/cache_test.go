package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/cache"
)

func TestKey_DistinguishesCalculatorAndBody(t *testing.T) {
	a := cache.Key("mortgage", []byte(`{"principal":200000}`))
	b := cache.Key("mortgage", []byte(`{"principal":200001}`))
	c := cache.Key("emi", []byte(`{"principal":200000}`))

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)

	// Same inputs always hash to the same key.
	assert.Equal(t, a, cache.Key("mortgage", []byte(`{"principal":200000}`)))
	assert.Contains(t, a, "calc:mortgage:")
}

func TestMemory_SetGetRoundTrip(t *testing.T) {
	c := cache.NewMemory(time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}

func TestMemory_EntriesExpire(t *testing.T) {
	c := cache.NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	c := cache.NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("abc"), 0))
	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	data[0] = 'x'
	again, _, _ := c.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}
