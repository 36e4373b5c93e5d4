package cache

import "context"

// Cache stores serialised chart props by request key.
// Implementations are safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
