package core

import "strings"

// Filter returns the notes whose title or content contains query
// (case-insensitive) and whose category matches category.
// CategoryAll matches every category. The input is not modified and the
// relative order is preserved.
func Filter(notes []Note, query string, category Category) []Note {
	q := strings.ToLower(query)
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if !matchesText(n, q) {
			continue
		}
		if category != CategoryAll && n.Category != category {
			continue
		}
		out = append(out, n)
	}
	return out
}

// IsIdentityFilter reports whether Filter would return every note unchanged.
func IsIdentityFilter(query string, category Category) bool {
	return query == "" && category == CategoryAll
}

func matchesText(n Note, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), lowered) ||
		strings.Contains(strings.ToLower(n.Content), lowered)
}

// OrderForDisplay places pinned notes before unpinned ones, keeping the
// relative order inside each group.
func OrderForDisplay(notes []Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.Pinned {
			out = append(out, n)
		}
	}
	for _, n := range notes {
		if !n.Pinned {
			out = append(out, n)
		}
	}
	return out
}
