package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Cache = (*MemoryCache)(nil)

// MemoryCache is an in-process cache backed by freecache.
type MemoryCache struct {
	cache         *freecache.Cache
	expireSeconds int
}

func NewMemoryCache(sizeMB, expireSeconds int) *MemoryCache {
	return &MemoryCache{
		cache:         freecache.NewCache(sizeMB * 1024 * 1024),
		expireSeconds: expireSeconds,
	}
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	value, err := mc.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("memory cache get [%s]: %s", key, err)
		}
		return nil, false
	}
	log.Tracef("memory cache hit [%s]", key)
	return value, true
}

func (mc *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	if err := mc.cache.Set([]byte(key), value, mc.expireSeconds); err != nil {
		return fmt.Errorf("memory cache set [%s]: %w", key, err)
	}
	return nil
}

func (mc *MemoryCache) Clear(_ context.Context) error {
	mc.cache.Clear()
	return nil
}
