package core

import (
	"strings"
	"time"
)

// UntitledTitle is stored in place of a blank title when a draft is saved.
const UntitledTitle = "Untitled note"

// Category tags a note for filtering.
// The set of known values is closed, but unknown values read from storage or an
// imported document are kept as they are.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryIdeas    Category = "ideas"
	CategoryOther    Category = "other"

	// CategoryAll is the filter sentinel that matches every category.
	CategoryAll Category = "all"
)

// Categories lists the known categories in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryIdeas, CategoryOther}

// Known reports whether c is one of the fixed categories.
func (c Category) Known() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryIdeas, CategoryOther:
		return true
	}
	return false
}

// Label returns the human label for c. Unknown categories display as "Other".
func (c Category) Label() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryPersonal:
		return "Personal"
	case CategoryIdeas:
		return "Ideas"
	default:
		return "Other"
	}
}

// Note is the central entity of the domain.
// The JSON names are the persisted and exported wire format.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Category  Category  `json:"category" yaml:"category"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
	Pinned    bool      `json:"pinned" yaml:"pinned"`
}

// DisplayTitle returns the title, or the placeholder when it is blank.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return UntitledTitle
	}
	return n.Title
}

// Preview returns at most limit runes of the content, marking truncation with "...".
func (n Note) Preview(limit int) string {
	r := []rune(n.Content)
	if len(r) <= limit {
		return n.Content
	}
	return string(r[:limit]) + "..."
}

// Draft is the editable part of a note, as entered by the user.
type Draft struct {
	Title    string
	Content  string   `validate:"required"`
	Category Category `validate:"required"`
}

// NewDraft returns an empty draft with the editor's default category.
func NewDraft() Draft {
	return Draft{Category: CategoryPersonal}
}

// Normalize trims title and content and applies the placeholder title.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Content = strings.TrimSpace(d.Content)
	if d.Title == "" {
		d.Title = UntitledTitle
	}
	if d.Category == "" {
		d.Category = CategoryOther
	}
	return d
}
