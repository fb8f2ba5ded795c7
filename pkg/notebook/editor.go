package notebook

import (
	"context"

	"github.com/aretw0/memo/pkg/core"
)

// NewDraft opens the editor on a blank note.
func (s *Service) NewDraft() core.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.target = ""
	return core.NewDraft()
}

// Open opens the editor on the note with id and returns its fields as a draft.
func (s *Service) Open(id string) (core.Draft, error) {
	n, err := s.FindByID(id)
	if err != nil {
		return core.Draft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.target = n.ID

	category := n.Category
	if category == "" {
		category = core.CategoryOther
	}
	return core.Draft{Title: n.Title, Content: n.Content, Category: category}, nil
}

// Target returns the id of the note open in the editor. ok is false when the
// editor is closed; an empty id with ok true means a new note.
func (s *Service) Target() (id string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target, s.editing
}

// Close discards the editor state.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.target = ""
}

// SaveCurrent saves draft against the editor target and closes the editor on
// success. A validation failure keeps the editor open.
func (s *Service) SaveCurrent(ctx context.Context, draft core.Draft) (core.Note, error) {
	id, ok := s.Target()
	if !ok {
		return core.Note{}, ErrNoNoteOpen
	}

	n, err := s.Save(ctx, draft, id)
	if err != nil {
		return core.Note{}, err
	}
	s.Close()
	return n, nil
}

// TogglePinCurrent toggles the pin of the note open in the editor.
// A new, unsaved note cannot be pinned.
func (s *Service) TogglePinCurrent(ctx context.Context) (core.Note, error) {
	id, ok := s.Target()
	if !ok || id == "" {
		return core.Note{}, ErrNoNoteOpen
	}
	return s.TogglePin(ctx, id)
}
