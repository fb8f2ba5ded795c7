package notebook_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/memo/pkg/adapters/memory"
	"github.com/aretw0/memo/pkg/core"
	"github.com/aretw0/memo/pkg/notebook"
	"github.com/aretw0/memo/pkg/storage"
)

var epoch = time.Date(2024, 1, 31, 8, 0, 0, 0, time.UTC)

// tickingClock advances one minute per call.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	n := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return epoch.Add(time.Duration(n) * time.Minute)
	}
}

func sequentialIDs(prefix string) core.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newService(t *testing.T, kv core.KV) *notebook.Service {
	t.Helper()
	if kv == nil {
		kv = memory.NewStore()
	}
	svc := notebook.NewService(storage.New(kv, nil),
		notebook.WithClock(tickingClock()),
		notebook.WithIDGenerator(sequentialIDs("n")),
	)
	svc.Load(context.Background())
	return svc
}

func draft(title, content string, c core.Category) core.Draft {
	return core.Draft{Title: title, Content: content, Category: c}
}

// flakyKV fails every Set once armed.
type flakyKV struct {
	*memory.Store
	fail bool
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	if f.fail {
		return errors.New("quota exceeded")
	}
	return f.Store.Set(ctx, key, value)
}

func TestSave_Create(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	svc := newService(t, kv)

	first, err := svc.Save(ctx, draft("  ", " hello ", core.CategoryWork), "")
	require.NoError(t, err)
	assert.Equal(t, "n1", first.ID)
	assert.Equal(t, core.UntitledTitle, first.Title)
	assert.Equal(t, "hello", first.Content)
	assert.False(t, first.Pinned)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second, err := svc.Save(ctx, draft("Second", "world", core.CategoryIdeas), "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	notes := svc.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].ID, "newest first")

	reloaded := newService(t, kv)
	assert.Equal(t, notes, reloaded.Notes())
}

func TestSave_LongTitleAccepted(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	title := strings.Repeat("t", 5000)
	n, err := svc.Save(ctx, draft(title, "body", core.CategoryWork), "")
	require.NoError(t, err)
	assert.Equal(t, title, n.Title)
	assert.Equal(t, 1, svc.Len())
}

func TestSave_WhitespaceContentRejected(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	svc := newService(t, kv)
	_, err := svc.Save(ctx, draft("t", "x", core.CategoryWork), "")
	require.NoError(t, err)

	_, err = svc.Save(ctx, draft("t", "  ", core.CategoryWork), "")
	assert.True(t, errors.Is(err, core.ErrValidation))
	assert.Equal(t, 1, svc.Len())

	_, err = svc.Save(ctx, draft("t", "\n\t", core.CategoryWork), "n1")
	assert.True(t, errors.Is(err, core.ErrValidation))
	n, _ := svc.FindByID("n1")
	assert.Equal(t, "x", n.Content)
}

func TestSave_Update(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	_, err := svc.Save(ctx, draft("a", "first", core.CategoryWork), "")
	require.NoError(t, err)
	created, err := svc.Save(ctx, draft("b", "second", core.CategoryWork), "")
	require.NoError(t, err)
	_, err = svc.TogglePin(ctx, created.ID)
	require.NoError(t, err)

	updated, err := svc.Save(ctx, draft("B!", "changed", core.CategoryIdeas), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.Pinned, "pin survives edits")
	assert.Equal(t, "B!", updated.Title)
	assert.Equal(t, "changed", updated.Content)
	assert.Equal(t, core.CategoryIdeas, updated.Category)

	notes := svc.Notes()
	assert.Equal(t, created.ID, notes[0].ID, "update keeps position")
}

func TestSave_UnknownTargetIsIgnored(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)
	_, err := svc.Save(ctx, draft("a", "first", core.CategoryWork), "")
	require.NoError(t, err)
	before := svc.Notes()

	_, err = svc.Save(ctx, draft("x", "y", core.CategoryWork), "missing")
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Equal(t, before, svc.Notes())
}

func TestSave_PersistFailureLeavesStateIntact(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{Store: memory.NewStore()}
	svc := newService(t, kv)
	n, err := svc.Save(ctx, draft("a", "first", core.CategoryWork), "")
	require.NoError(t, err)

	kv.fail = true
	_, err = svc.Save(ctx, draft("b", "second", core.CategoryWork), "")
	assert.Error(t, err)
	_, err = svc.TogglePin(ctx, n.ID)
	assert.Error(t, err)

	notes := svc.Notes()
	require.Len(t, notes, 1)
	assert.False(t, notes[0].Pinned)
}

func TestTogglePin(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)
	original, err := svc.Save(ctx, draft("a", "body", core.CategoryWork), "")
	require.NoError(t, err)

	once, err := svc.TogglePin(ctx, original.ID)
	require.NoError(t, err)
	assert.True(t, once.Pinned)
	assert.Equal(t, original.UpdatedAt, once.UpdatedAt)

	twice, err := svc.TogglePin(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original, twice)

	_, err = svc.TogglePin(ctx, "missing")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestOrderedAndSearch(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	// Saved in reverse so the collection reads A, B, C, D.
	for _, title := range []string{"D", "C", "B", "A"} {
		_, err := svc.Save(ctx, draft(title, "note "+title, core.CategoryPersonal), "")
		require.NoError(t, err)
	}
	byTitle := map[string]string{}
	for _, n := range svc.Notes() {
		byTitle[n.Title] = n.ID
	}
	for _, title := range []string{"B", "D"} {
		_, err := svc.TogglePin(ctx, byTitle[title])
		require.NoError(t, err)
	}

	titles := func(notes []core.Note) []string {
		var out []string
		for _, n := range notes {
			out = append(out, n.Title)
		}
		return out
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(svc.Notes()))
	assert.Equal(t, []string{"B", "D", "A", "C"}, titles(svc.Ordered()))
	assert.Equal(t, []string{"B", "D", "A", "C"}, titles(svc.Search("", core.CategoryAll)))
	assert.Equal(t, []string{"C"}, titles(svc.Search("note c", core.CategoryPersonal)))
	assert.Empty(t, svc.Search("note", core.CategoryWork))
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	svc := newService(t, kv)
	assert.False(t, svc.DarkMode())

	dark, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.True(t, dark)
	assert.True(t, newService(t, kv).DarkMode())

	require.NoError(t, svc.SetDarkMode(ctx, false))
	raw, err := kv.Get(ctx, storage.DarkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "false", raw)
}

func TestEditor(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	_, ok := svc.Target()
	assert.False(t, ok)
	_, err := svc.SaveCurrent(ctx, draft("x", "y", core.CategoryWork))
	assert.True(t, errors.Is(err, notebook.ErrNoNoteOpen))

	d := svc.NewDraft()
	assert.Equal(t, core.CategoryPersonal, d.Category)
	_, err = svc.TogglePinCurrent(ctx)
	assert.True(t, errors.Is(err, notebook.ErrNoNoteOpen), "unsaved notes cannot be pinned")

	d.Content = "   "
	_, err = svc.SaveCurrent(ctx, d)
	assert.True(t, errors.Is(err, core.ErrValidation))
	_, ok = svc.Target()
	assert.True(t, ok, "editor stays open after a validation error")

	d.Content = "written in the editor"
	created, err := svc.SaveCurrent(ctx, d)
	require.NoError(t, err)
	_, ok = svc.Target()
	assert.False(t, ok)

	opened, err := svc.Open(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "written in the editor", opened.Content)

	pinned, err := svc.TogglePinCurrent(ctx)
	require.NoError(t, err)
	assert.True(t, pinned.Pinned)

	opened.Content = "edited"
	updated, err := svc.SaveCurrent(ctx, opened)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Pinned)

	_, err = svc.Open("missing")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	state, ok := svc.State().(notebook.ServiceState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Notes)
	assert.Equal(t, 1, state.Pinned)
	assert.False(t, state.Editing)
	assert.Equal(t, "notebook", svc.ComponentType())
}
