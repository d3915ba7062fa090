package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoltCache(t *testing.T) *BoltCache {
	t.Helper()

	c, err := NewBoltCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c
}

func TestBoltCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestBoltCache(t)

	in := testEntry{Name: "widget", Count: 7, Tags: []string{"x"}}
	require.NoError(t, c.Set(ctx, "k1", in, 0))

	var out testEntry
	found, err := c.Get(ctx, "k1", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestBoltCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestBoltCache(t)

	var out testEntry
	found, err := c.Get(ctx, "absent", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBoltCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestBoltCache(t)

	require.NoError(t, c.Set(ctx, "k1", testEntry{Name: "a"}, 0))
	require.NoError(t, c.Delete(ctx, "k1", "never-existed"))

	var out testEntry
	found, err := c.Get(ctx, "k1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBoltCacheTTLExpires(t *testing.T) {
	ctx := context.Background()
	c := newTestBoltCache(t)

	require.NoError(t, c.Set(ctx, "k1", testEntry{Name: "a"}, 25*time.Millisecond))

	time.Sleep(60 * time.Millisecond)

	var out testEntry
	found, err := c.Get(ctx, "k1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBoltCachePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := NewBoltCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "k1", testEntry{Name: "durable"}, 0))
	require.NoError(t, c.Close())

	reopened, err := NewBoltCache(path)
	require.NoError(t, err)
	defer reopened.Close()

	var out testEntry
	found, err := reopened.Get(ctx, "k1", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "durable", out.Name)
}
