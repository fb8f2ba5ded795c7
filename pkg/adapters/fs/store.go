// Package fs stores memo keys as files in a directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/memo/pkg/core"
)

// DefaultDir is the directory name used under the user's home when none is given.
const DefaultDir = ".memo"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
}

// Store implements core.KV with one file per key.
type Store struct {
	Path   string
	config Config

	mu     sync.RWMutex
	reads  int
	writes int
}

// NewStore creates a filesystem store. Call Initialize before use.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Store{Path: config.Path, config: config}
}

// Initialize makes sure the storage directory is usable.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			if s.config.ReadOnly {
				// nothing to read yet; every Get reports a missing key
				return nil
			}
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat store path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

func (s *Store) file(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.Path, key), nil
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	path, err := s.file(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", core.ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}

	s.mu.Lock()
	s.reads++
	s.mu.Unlock()

	return string(data), nil
}

// Set writes value under key atomically.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := s.file(key)
	if err != nil {
		return err
	}

	if err := writeValue(path, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	s.mu.Lock()
	s.writes++
	s.mu.Unlock()

	s.config.Logger.Debug("key written", "key", key, "bytes", len(value))
	return nil
}

var _ core.KV = (*Store)(nil)
