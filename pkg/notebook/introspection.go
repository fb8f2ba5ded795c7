package notebook

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes    int    `json:"notes"`
	Pinned   int    `json:"pinned"`
	DarkMode bool   `json:"dark_mode"`
	Editing  bool   `json:"editing"`
	Target   string `json:"target,omitempty"`
	Imports  int    `json:"imports"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pinned := 0
	for _, n := range s.notes {
		if n.Pinned {
			pinned++
		}
	}

	return ServiceState{
		Notes:    len(s.notes),
		Pinned:   pinned,
		DarkMode: s.darkMode,
		Editing:  s.editing,
		Target:   s.target,
		Imports:  s.imports,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "notebook"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
