// Package notebook owns the application state: the note collection, the
// theme flag and the note currently open in the editor.
package notebook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/memo/pkg/core"
	"github.com/aretw0/memo/pkg/storage"
	"github.com/aretw0/memo/pkg/transfer"
)

// ErrNoNoteOpen is returned by editor operations when no existing note is open.
var ErrNoNoteOpen = errors.New("no note is open in the editor")

// Service handles the note collection. Every mutation persists the whole
// collection before it becomes visible; a failed write leaves state unchanged.
type Service struct {
	mu       sync.RWMutex
	storage  *storage.Storage
	notes    []core.Note
	darkMode bool

	// editor state
	editing bool
	target  string

	imports int

	logger   *slog.Logger
	now      func() time.Time
	newID    core.IDGenerator
	importID func(time.Time) string
}

// NewService creates a Service backed by st. Call Load to read persisted state.
func NewService(st *storage.Storage, opts ...Option) *Service {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Service{
		storage:  st,
		notes:    []core.Note{},
		logger:   o.logger,
		now:      o.now,
		newID:    o.newID,
		importID: o.importID,
	}
}

// Load reads the collection and theme flag from storage. Unreadable state is
// treated as empty, so Load cannot fail.
func (s *Service) Load(ctx context.Context) {
	notes := s.storage.LoadCollection(ctx)
	dark := s.storage.LoadThemeFlag(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.darkMode = dark
	s.logger.Debug("state loaded", "notes", len(notes), "dark_mode", dark)
}

// commit persists next and installs it. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next []core.Note) error {
	if err := s.storage.PersistCollection(ctx, next); err != nil {
		return fmt.Errorf("failed to persist notes: %w", err)
	}
	s.notes = next
	return nil
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n core.Note) bool { return n.ID == id })
}

// Save creates a note when targetID is empty, otherwise updates the note with
// that id. Updates replace title, content and category and refresh UpdatedAt;
// id, CreatedAt and Pinned are kept. An unknown targetID changes nothing and
// returns core.ErrNotFound. Content that is empty after trimming fails with
// core.ErrValidation.
func (s *Service) Save(ctx context.Context, draft core.Draft, targetID string) (core.Note, error) {
	d, err := core.Validate(draft)
	if err != nil {
		return core.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if targetID == "" {
		n := core.Note{
			ID:        s.newID(),
			Title:     d.Title,
			Content:   d.Content,
			Category:  d.Category,
			CreatedAt: now,
			UpdatedAt: now,
			Pinned:    false,
		}
		next := make([]core.Note, 0, len(s.notes)+1)
		next = append(next, n)
		next = append(next, s.notes...)
		if err := s.commit(ctx, next); err != nil {
			return core.Note{}, err
		}
		s.logger.Info("note created", "id", n.ID, "category", n.Category)
		return n, nil
	}

	i := s.indexOf(targetID)
	if i < 0 {
		s.logger.Debug("save ignored, target not found", "id", targetID)
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, targetID)
	}

	n := s.notes[i]
	n.Title = d.Title
	n.Content = d.Content
	n.Category = d.Category
	n.UpdatedAt = now
	if n.UpdatedAt.Before(n.CreatedAt) {
		n.UpdatedAt = n.CreatedAt
	}

	next := slices.Clone(s.notes)
	next[i] = n
	if err := s.commit(ctx, next); err != nil {
		return core.Note{}, err
	}
	s.logger.Info("note updated", "id", n.ID)
	return n, nil
}

// FindByID returns the note with id or core.ErrNotFound.
func (s *Service) FindByID(id string) (core.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	return s.notes[i], nil
}

// TogglePin flips the pin of the note with id. UpdatedAt is not touched.
func (s *Service) TogglePin(ctx context.Context, id string) (core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	next := slices.Clone(s.notes)
	next[i].Pinned = !next[i].Pinned
	if err := s.commit(ctx, next); err != nil {
		return core.Note{}, err
	}
	s.logger.Info("pin toggled", "id", id, "pinned", next[i].Pinned)
	return next[i], nil
}

// Notes returns a copy of the collection in stored order (newest first).
func (s *Service) Notes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// Len returns the number of notes.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Ordered returns the collection in display order, pinned notes first.
func (s *Service) Ordered() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.OrderForDisplay(s.notes)
}

// Search filters the collection by query and category and returns the
// matches in display order.
func (s *Service) Search(query string, category core.Category) []core.Note {
	if core.IsIdentityFilter(query, category) {
		return s.Ordered()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.OrderForDisplay(core.Filter(s.notes, query, category))
}

// DarkMode reports the theme flag.
func (s *Service) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// SetDarkMode stores the theme flag.
func (s *Service) SetDarkMode(ctx context.Context, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.PersistThemeFlag(ctx, dark); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	s.darkMode = dark
	return nil
}

// ToggleTheme flips the theme flag and returns the new value.
func (s *Service) ToggleTheme(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dark := !s.darkMode
	if err := s.storage.PersistThemeFlag(ctx, dark); err != nil {
		return s.darkMode, fmt.Errorf("failed to persist theme: %w", err)
	}
	s.darkMode = dark
	return dark, nil
}

// Export serializes the whole collection. An empty collection fails with
// core.ErrEmptyCollection.
func (s *Service) Export(format transfer.Format) (transfer.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return transfer.Export(s.notes, s.now(), format)
}
