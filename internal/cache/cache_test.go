package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestCache creates an in-memory cache with a controllable clock
func setupTestCache(t *testing.T, ttl time.Duration) (*Cache, *time.Time) {
	t.Helper()

	c, err := Open(":memory:", ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	c, _ := setupTestCache(t, time.Hour)

	_, ok, err := c.Get(ctx, "https://runescape.wiki/w/Dragon_Slayer")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "https://runescape.wiki/w/Dragon_Slayer", []byte("<html>v1</html>")))
	require.NoError(t, c.Set(ctx, "https://runescape.wiki/w/Dragon_Slayer", []byte("<html>v2</html>")))

	body, ok, err := c.Get(ctx, "https://runescape.wiki/w/Dragon_Slayer")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<html>v2</html>", string(body))

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	c, now := setupTestCache(t, time.Hour)

	require.NoError(t, c.Set(ctx, "u", []byte("x")))

	*now = now.Add(59 * time.Minute)
	_, ok, err := c.Get(ctx, "u")
	require.NoError(t, err)
	assert.True(t, ok)

	*now = now.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, "u")
	require.NoError(t, err)
	assert.False(t, ok, "entry older than the TTL is a miss")
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	c, now := setupTestCache(t, time.Hour)

	require.NoError(t, c.Set(ctx, "old", []byte("x")))
	*now = now.Add(3 * time.Hour)
	require.NoError(t, c.Set(ctx, "new", []byte("y")))

	removed, err := c.Purge(ctx, 2*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	removed, err = c.Purge(ctx, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pages.db")

	c, err := Open(path, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, c.ttl)
	require.NoError(t, c.Set(context.Background(), "u", []byte("x")))
	require.NoError(t, c.Close())

	c, err = Open(path, 0)
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get(context.Background(), "u")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("", time.Hour)
	assert.Error(t, err)
}
