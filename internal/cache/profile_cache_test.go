package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/mini-auth-api/internal/user"
)

func newTestCache(t *testing.T, ttl time.Duration) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewProfileCache(rdb, ttl), mr
}

func testProfile() *user.Profile {
	return &user.Profile{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "alice@example.com",
		Age:       30,
		Location:  "NYC",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestProfileKey(t *testing.T) {
	require.Equal(t, "profile:name:Alice", profileKey("Alice"))
	require.NotEqual(t, profileKey("alice"), profileKey("Alice"), "names are case sensitive")
}

func TestProfileCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		p, err := c.Get(ctx, "Alice")
		require.NoError(t, err)
		require.Nil(t, p)
	})

	t.Run("round trip", func(t *testing.T) {
		c, mr := newTestCache(t, time.Minute)
		want := testProfile()

		require.NoError(t, c.Set(ctx, want))
		require.True(t, mr.Exists(profileKey("Alice")))

		got, err := c.Get(ctx, "Alice")
		require.NoError(t, err)
		require.Equal(t, want, got)

		raw, err := mr.Get(profileKey("Alice"))
		require.NoError(t, err)
		require.NotContains(t, raw, "password")
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		c, mr := newTestCache(t, 30*time.Second)

		require.NoError(t, c.Set(ctx, testProfile()))
		require.Equal(t, 30*time.Second, mr.TTL(profileKey("Alice")))

		mr.FastForward(31 * time.Second)

		p, err := c.Get(ctx, "Alice")
		require.NoError(t, err)
		require.Nil(t, p)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		c, mr := newTestCache(t, time.Minute)
		require.NoError(t, mr.Set(profileKey("Alice"), "{not json"))

		p, err := c.Get(ctx, "Alice")
		require.Error(t, err)
		require.Nil(t, p)
	})

	t.Run("server error", func(t *testing.T) {
		c, mr := newTestCache(t, time.Minute)
		mr.SetError("ERR server unavailable")

		p, err := c.Get(ctx, "Alice")
		require.Error(t, err)
		require.Nil(t, p)

		require.Error(t, c.Set(ctx, testProfile()))
	})
}

func TestProfileCache_SatisfiesUserInterface(t *testing.T) {
	var _ user.ProfileCache = (*ProfileCache)(nil)
}
