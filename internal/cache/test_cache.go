package cache

import (
	"context"
	"sync"
)

var _ Cache = (*TestCache)(nil)

// TestCache is a map-backed Cache for tests.
type TestCache struct {
	cache map[string][]byte
	mutex sync.Mutex
	// SetErr, when set, is returned by every Set call.
	SetErr error
}

func NewTestCache() *TestCache {
	return &TestCache{
		cache: make(map[string][]byte),
	}
}

func (tc *TestCache) Get(_ context.Context, key string) ([]byte, bool) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	val, ok := tc.cache[key]
	return val, ok
}

func (tc *TestCache) Set(_ context.Context, key string, value []byte) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if tc.SetErr != nil {
		return tc.SetErr
	}
	tc.cache[key] = append([]byte(nil), value...)
	return nil
}

func (tc *TestCache) Clear(_ context.Context) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	tc.cache = make(map[string][]byte)
	return nil
}

func (tc *TestCache) Len() int {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	return len(tc.cache)
}
