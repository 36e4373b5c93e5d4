package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultRedisKeyPrefix = "fitstats:chart:"
	scanBatchSize         = 100
)

var _ Cache = (*RedisCache)(nil)

// RedisCache shares chart props between service instances.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := rc.client.Get(ctx, rc.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("redis cache get [%s]: %s", key, err)
		}
		return nil, false
	}
	log.Tracef("redis cache hit [%s]", key)
	return value, true
}

func (rc *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := rc.client.Set(ctx, rc.prefix+key, value, rc.ttl).Err(); err != nil {
		return fmt.Errorf("redis cache set [%s]: %w", key, err)
	}
	return nil
}

// Clear removes every key under the cache prefix.
func (rc *RedisCache) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, rc.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis cache del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
