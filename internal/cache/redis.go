package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/courtside/internal/schedule"
)

// snapshotKey holds the serialized schedule cache for warm starts. The
// snapshot is advisory; a full reload rebuilds it from the warehouse.
const snapshotKey = "courtside:schedule:snapshot"

// RedisCache persists the schedule snapshot and backs the event stream.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis connection.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client.
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify the connection.
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// SaveSnapshot writes the schedule cache for the next warm start.
func (rc *RedisCache) SaveSnapshot(ctx context.Context, cache schedule.Cache) error {
	data, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return rc.client.Set(ctx, snapshotKey, data, 0).Err()
}

// LoadSnapshot reads the last saved schedule cache. A missing key returns
// an empty cache, not an error.
func (rc *RedisCache) LoadSnapshot(ctx context.Context) (schedule.Cache, error) {
	data, err := rc.client.Get(ctx, snapshotKey).Result()
	if err == redis.Nil {
		return schedule.Cache{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cache schedule.Cache
	if err := json.Unmarshal([]byte(data), &cache); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return cache, nil
}
