package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

// DefaultLocationTTL bounds how long a location list may lag behind registrations.
const DefaultLocationTTL = 10 * time.Minute

var _ ports.LocationCache = (*LocationCache)(nil)

// LocationCache keeps one JSON list of locations per role under "locations:<Role>".
type LocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLocationCache(client *redis.Client, ttl time.Duration) *LocationCache {
	if ttl <= 0 {
		ttl = DefaultLocationTTL
	}
	return &LocationCache{client: client, ttl: ttl}
}

func (c *LocationCache) Get(ctx context.Context, role staff.Role) ([]string, bool, error) {
	cached, err := c.client.Get(ctx, key(role)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	locations := make([]string, 0)
	if err = json.Unmarshal([]byte(cached), &locations); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry %s: %w", key(role), err)
	}
	return locations, true, nil
}

func (c *LocationCache) Set(ctx context.Context, role staff.Role, locations []string) error {
	if locations == nil {
		locations = []string{}
	}
	serialized, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return c.client.SetEX(ctx, key(role), serialized, c.ttl).Err()
}

func (c *LocationCache) Invalidate(ctx context.Context, role staff.Role) error {
	return c.client.Del(ctx, key(role)).Err()
}

func key(role staff.Role) string {
	return "locations:" + role.String()
}
