package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/memo/pkg/core"
)

func sampleNotes() []core.Note {
	return []core.Note{
		{ID: "1", Title: "Groceries", Content: "Milk and EGGS", Category: core.CategoryPersonal},
		{ID: "2", Title: "Sprint review", Content: "demo the importer", Category: core.CategoryWork},
		{ID: "3", Title: "", Content: "an idea about eggs", Category: core.CategoryIdeas},
		{ID: "4", Title: "Legacy", Content: "old category", Category: core.Category("archive")},
	}
}

func ids(notes []core.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	notes := sampleNotes()

	t.Run("Empty Query And All Is Identity", func(t *testing.T) {
		got := core.Filter(notes, "", core.CategoryAll)
		assert.Equal(t, notes, got)
		assert.True(t, core.IsIdentityFilter("", core.CategoryAll))
		assert.False(t, core.IsIdentityFilter("x", core.CategoryAll))
	})

	t.Run("Case Insensitive On Title Or Content", func(t *testing.T) {
		assert.Equal(t, []string{"1", "3"}, ids(core.Filter(notes, "Eggs", core.CategoryAll)))
		assert.Equal(t, []string{"2"}, ids(core.Filter(notes, "SPRINT", core.CategoryAll)))
	})

	t.Run("Category Must Also Match", func(t *testing.T) {
		assert.Equal(t, []string{"3"}, ids(core.Filter(notes, "eggs", core.CategoryIdeas)))
		assert.Empty(t, core.Filter(notes, "eggs", core.CategoryWork))
	})

	t.Run("Unknown Category Only Matches Itself", func(t *testing.T) {
		assert.Equal(t, []string{"4"}, ids(core.Filter(notes, "", core.Category("archive"))))
		assert.Empty(t, core.Filter(notes, "legacy", core.CategoryOther))
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		before := sampleNotes()
		_ = core.Filter(notes, "eggs", core.CategoryIdeas)
		assert.Equal(t, before, notes)
	})

	t.Run("Idempotent", func(t *testing.T) {
		cases := []struct {
			q string
			c core.Category
		}{
			{"", core.CategoryAll},
			{"eggs", core.CategoryAll},
			{"e", core.CategoryPersonal},
			{"nothing", core.CategoryWork},
		}
		for _, tc := range cases {
			once := core.Filter(notes, tc.q, tc.c)
			twice := core.Filter(once, tc.q, tc.c)
			assert.Equal(t, once, twice, "query=%q category=%q", tc.q, tc.c)
		}
	})
}

func TestOrderForDisplay(t *testing.T) {
	notes := []core.Note{
		{ID: "A", Pinned: false},
		{ID: "B", Pinned: true},
		{ID: "C", Pinned: false},
		{ID: "D", Pinned: true},
	}

	got := core.OrderForDisplay(notes)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"B", "D", "A", "C"}, ids(got))
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(notes), "input must keep its order")
}
