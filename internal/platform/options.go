package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/memo/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterMemory = "memory"
	AdapterSQLite = "sqlite"
	AdapterRedis  = "redis"
)

// DefaultRedisAddr is used by the redis adapter when no address is configured.
const DefaultRedisAddr = "localhost:6379"

// options holds the internal configuration for a memo notebook.
type options struct {
	kv        core.KV
	logger    *slog.Logger
	adapter   string
	redisAddr string
	readOnly  bool
	mustExist bool
	forceTemp bool
	devSafety bool
	clock     func() time.Time
}

// Option defines a functional option for configuring memo.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:   AdapterFS,
		redisAddr: DefaultRedisAddr,
		devSafety: true,
	}
}

// WithLogger sets the logger for the store and the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKV injects a custom key-value store (e.g. a mock).
// If provided, the adapter selection is skipped.
func WithKV(kv core.KV) Option {
	return func(o *options) {
		o.kv = kv
	}
}

// WithAdapter selects the storage adapter by name: fs, memory, sqlite or redis.
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithRedisAddr sets the server address used by the redis adapter.
func WithRedisAddr(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.redisAddr = addr
		}
	}
}

// WithReadOnly enables read-only mode.
// Every write returns core.ErrReadOnly and no directory is created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist requires the storage directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) file based adapters are re-rooted under the system temp dir.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithClock overrides the time source of the service.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}
