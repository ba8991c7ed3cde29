package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const likesKeyPrefix = "userlikes:"

// likesTTL bounds staleness for entries that miss an invalidation (e.g. a
// crash between the store write and the cache update).
const likesTTL = 30 * time.Minute

// RedisLikesCache is a Redis-backed LikesCache.
type RedisLikesCache struct {
	client *redis.Client
}

// NewRedisLikesCacheConfig contains options for creating a RedisLikesCache.
type NewRedisLikesCacheConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisLikesCache connects to Redis and returns a LikesCache backed by it.
func NewRedisLikesCache(ctx context.Context, cfg NewRedisLikesCacheConfig) (*RedisLikesCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisLikesCache{client: rdb}, nil
}

func likesKey(userID string) string {
	return likesKeyPrefix + userID
}

// Get retrieves the member's cached like keys.
func (c *RedisLikesCache) Get(ctx context.Context, userID string) ([]string, bool, error) {
	val, err := c.client.Get(ctx, likesKey(userID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var keys []string
	if err := json.Unmarshal([]byte(val), &keys); err != nil {
		// Treat a corrupt entry as a miss and drop it.
		c.client.Del(ctx, likesKey(userID))
		return nil, false, nil
	}
	return keys, true, nil
}

// Set replaces the member's cached like-set.
func (c *RedisLikesCache) Set(ctx context.Context, userID string, keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	b, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, likesKey(userID), b, likesTTL).Err()
}

// Invalidate drops the member's entry.
func (c *RedisLikesCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, likesKey(userID)).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisLikesCache) Close() error {
	return c.client.Close()
}
