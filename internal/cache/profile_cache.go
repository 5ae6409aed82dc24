package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/redmonkez12/mini-auth-api/internal/user"
)

const keyProfile = "profile:name:"

// ProfileCache caches profile projections in Redis, keyed by user name.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProfileCache returns a new ProfileCache.
func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached profile or nil on a miss.
func (c *ProfileCache) Get(ctx context.Context, name string) (*user.Profile, error) {
	b, err := c.rdb.Get(ctx, profileKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p user.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Set stores the profile under its name.
func (c *ProfileCache) Set(ctx context.Context, p *user.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, profileKey(p.Name), b, c.ttl).Err()
}

func profileKey(name string) string {
	return keyProfile + name
}
