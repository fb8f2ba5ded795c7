package core

import "context"

// KV is durable key-value storage holding text values.
// Implementations must make Set atomic from the caller's point of view.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// Closer is implemented by stores holding connections or handles.
type Closer interface {
	Close() error
}
