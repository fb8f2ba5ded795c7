// Package storage persists the note collection and the theme flag.
package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/memo/pkg/core"
	"github.com/aretw0/memo/pkg/typed"
)

// Storage keys, compatible with existing localStorage exports.
const (
	NotesKey    = "notes"
	DarkModeKey = "darkMode"
)

// Storage loads and persists application state on top of a core.KV.
type Storage struct {
	notes    *typed.Key[[]core.Note]
	darkMode *typed.Key[bool]
	logger   *slog.Logger
}

// New wraps kv. A nil logger uses slog.Default().
func New(kv core.KV, logger *slog.Logger) *Storage {
	if logger == nil {
		logger = slog.Default()
	}
	return &Storage{
		notes:    typed.NewKey[[]core.Note](kv, NotesKey),
		darkMode: typed.NewKey[bool](kv, DarkModeKey),
		logger:   logger,
	}
}

// LoadCollection returns the persisted notes. Missing or unreadable state
// yields an empty collection; it never fails.
func (s *Storage) LoadCollection(ctx context.Context) []core.Note {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		s.logFallback("notes", err)
		return []core.Note{}
	}
	if notes == nil {
		return []core.Note{}
	}
	return notes
}

// PersistCollection writes the whole collection in a single Set.
func (s *Storage) PersistCollection(ctx context.Context, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}
	return s.notes.Store(ctx, notes)
}

// LoadThemeFlag returns the dark mode setting, false when absent or unreadable.
func (s *Storage) LoadThemeFlag(ctx context.Context) bool {
	v, err := s.darkMode.Load(ctx)
	if err != nil {
		s.logFallback("darkMode", err)
		return false
	}
	return v
}

// PersistThemeFlag writes the dark mode setting as "true" or "false".
func (s *Storage) PersistThemeFlag(ctx context.Context, dark bool) error {
	return s.darkMode.Store(ctx, dark)
}

func (s *Storage) logFallback(key string, err error) {
	if errors.Is(err, core.ErrKeyNotFound) {
		s.logger.Debug("no persisted state, using default", "key", key)
		return
	}
	s.logger.Warn("persisted state unreadable, using default", "key", key, "error", err)
}
