package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var miss payload
	assert.False(t, c.Get(ctx, "absent", &miss))

	c.Set(ctx, "k", payload{Name: "shorts", Count: 3}, time.Minute)

	var got payload
	require.True(t, c.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "shorts", Count: 3}, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	current := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set(ctx, "k", payload{Name: "fresh"}, time.Hour)

	var got payload
	require.True(t, c.Get(ctx, "k", &got))

	// Step past the TTL.
	current = current.Add(time.Hour + time.Second)
	assert.False(t, c.Get(ctx, "k", &got))

	// Purge drops the dead entry.
	c.Purge()
	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Empty(t, c.entries)
}

func TestMemoryCacheStoresCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	value := []string{"a", "b"}
	c.Set(ctx, "k", value, time.Minute)
	value[0] = "mutated"

	var got []string
	require.True(t, c.Get(ctx, "k", &got))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNopCache()

	c.Set(ctx, "k", payload{Name: "x"}, time.Minute)

	var got payload
	assert.False(t, c.Get(ctx, "k", &got))
}
