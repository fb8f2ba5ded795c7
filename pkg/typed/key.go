// Package typed binds Go values to keys of a core.KV.
package typed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/memo/pkg/core"
)

// Key is a JSON-encoded value of type T stored under a fixed name.
type Key[T any] struct {
	kv   core.KV
	name string
}

// NewKey binds name in kv to values of type T.
func NewKey[T any](kv core.KV, name string) *Key[T] {
	return &Key[T]{kv: kv, name: name}
}

// Name returns the storage key.
func (k *Key[T]) Name() string {
	return k.name
}

// Load decodes the stored value. A missing key yields core.ErrKeyNotFound;
// text that does not decode as T is wrapped with core.ErrParse.
func (k *Key[T]) Load(ctx context.Context) (T, error) {
	var zero T
	raw, err := k.kv.Get(ctx, k.name)
	if err != nil {
		return zero, err
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return zero, fmt.Errorf("%w: key %s: %v", core.ErrParse, k.name, err)
	}
	return v, nil
}

// Store encodes v and writes it in one Set call.
func (k *Key[T]) Store(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", k.name, err)
	}
	return k.kv.Set(ctx, k.name, string(data))
}
