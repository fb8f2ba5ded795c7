package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/memo/pkg/adapters/fs"
	"github.com/aretw0/memo/pkg/adapters/memory"
	"github.com/aretw0/memo/pkg/adapters/redis"
	"github.com/aretw0/memo/pkg/adapters/sqlite"
	"github.com/aretw0/memo/pkg/core"
	"github.com/aretw0/memo/pkg/notebook"
	"github.com/aretw0/memo/pkg/storage"
)

// SQLiteFile is the database file created inside the storage directory.
const SQLiteFile = "memo.db"

// New opens the configured store and returns a loaded notebook service.
// The uri is adapter-specific: a directory for fs and sqlite, ignored by memory
// and redis. The returned close function releases the store.
//
//	svc, closeFn, err := platform.New(ctx, "~/.memo", platform.WithAdapter("sqlite"))
func New(ctx context.Context, uri string, opts ...Option) (*notebook.Service, func() error, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	kv, err := Open(ctx, uri, opts...)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() error { return nil }
	if c, ok := kv.(core.Closer); ok {
		closeFn = c.Close
	}

	svcOpts := []notebook.Option{notebook.WithLogger(o.logger)}
	if o.clock != nil {
		svcOpts = append(svcOpts, notebook.WithClock(o.clock))
	}

	svc := notebook.NewService(storage.New(kv, o.logger), svcOpts...)
	svc.Load(ctx)
	return svc, closeFn, nil
}

// Open initializes the key-value store selected by the options.
func Open(ctx context.Context, uri string, opts ...Option) (core.KV, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	var kv core.KV
	var err error

	switch {
	case o.kv != nil:
		kv = o.kv
	case o.adapter == AdapterFS:
		kv, err = openFS(ctx, uri, o)
	case o.adapter == AdapterMemory:
		kv = memory.NewStore()
	case o.adapter == AdapterSQLite:
		kv, err = openSQLite(uri, o)
	case o.adapter == AdapterRedis:
		kv, err = redis.Dial(ctx, o.redisAddr, redis.DefaultPrefix)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if o.readOnly && (o.kv != nil || o.adapter != AdapterFS) {
		kv = &readOnlyKV{KV: kv}
	}
	return kv, nil
}

func (o *options) storePath(uri string) string {
	isReadOnly := o.readOnly
	bypassSafety := isReadOnly || !o.devSafety
	useTemp := o.forceTemp || (IsDevRun() && !bypassSafety)
	resolved := ResolveStorePath(uri, useTemp)

	if useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", uri, "resolved_path", resolved)
	}
	return resolved
}

func openFS(ctx context.Context, uri string, o *options) (core.KV, error) {
	store := fs.NewStore(fs.Config{
		Path:      o.storePath(uri),
		MustExist: o.mustExist,
		ReadOnly:  o.readOnly,
		Logger:    o.logger,
	})
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func openSQLite(uri string, o *options) (core.KV, error) {
	path := o.storePath(uri)
	if !strings.HasSuffix(path, ".db") {
		path = filepath.Join(path, SQLiteFile)
	}

	dir := filepath.Dir(path)
	if o.mustExist || o.readOnly {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("store path does not exist: %s", dir)
		}
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return sqlite.Open(path)
}

// readOnlyKV rejects writes for adapters without a native read-only mode.
type readOnlyKV struct {
	core.KV
}

func (r *readOnlyKV) Set(ctx context.Context, key, value string) error {
	return core.ErrReadOnly
}

func (r *readOnlyKV) Close() error {
	if c, ok := r.KV.(core.Closer); ok {
		return c.Close()
	}
	return nil
}
