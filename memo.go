package memo

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/memo/internal/platform"
	"github.com/aretw0/memo/pkg/core"
	"github.com/aretw0/memo/pkg/notebook"
)

// --- Types ---

// Service is a public alias for the notebook service.
type Service = notebook.Service

// Note is a public alias for the stored note.
type Note = core.Note

// Draft is a public alias for the editable part of a note.
type Draft = core.Draft

// --- Configuration ---

// Option defines a functional option for configuring memo.
type Option = platform.Option

// WithLogger sets the logger for the store and the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithKV injects a custom key-value store.
func WithKV(kv core.KV) Option {
	return platform.WithKV(kv)
}

// WithAdapter selects the storage adapter by name: fs, memory, sqlite or redis.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithRedisAddr sets the server address used by the redis adapter.
func WithRedisAddr(addr string) Option {
	return platform.WithRedisAddr(addr)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist requires the storage directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the sandbox used when running via `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithClock overrides the time source of the service.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// --- Factory ---

// New opens the configured store and returns a loaded notebook service
// together with a function releasing the store.
func New(ctx context.Context, uri string, opts ...Option) (*Service, func() error, error) {
	return platform.New(ctx, uri, opts...)
}

// DefaultDir returns the .memo directory of the enclosing project, or ~/.memo.
func DefaultDir() (string, error) {
	return platform.DefaultDir()
}

// IsDevRun reports whether the binary runs from `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
