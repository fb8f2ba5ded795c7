package notebook_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/memo/pkg/adapters/memory"
	"github.com/aretw0/memo/pkg/core"
	"github.com/aretw0/memo/pkg/notebook"
	"github.com/aretw0/memo/pkg/storage"
	"github.com/aretw0/memo/pkg/transfer"
)

func TestExport_Empty(t *testing.T) {
	svc := newService(t, nil)
	_, err := svc.Export(transfer.FormatJSON)
	assert.True(t, errors.Is(err, core.ErrEmptyCollection))
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newService(t, nil)
	for i, c := range []core.Category{core.CategoryWork, core.CategoryIdeas, core.CategoryOther} {
		n, err := src.Save(ctx, draft("title", strings.Repeat("x", i+1), c), "")
		require.NoError(t, err)
		if i == 1 {
			_, err = src.TogglePin(ctx, n.ID)
			require.NoError(t, err)
		}
	}

	doc, err := src.Export(transfer.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Count)

	dst := newService(t, nil)
	count, err := dst.Import(ctx, doc.Data, transfer.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	original := src.Notes()
	imported := dst.Notes()
	require.Len(t, imported, len(original))

	originalIDs := map[string]bool{}
	for _, n := range original {
		originalIDs[n.ID] = true
	}
	seen := map[string]bool{}
	for i := range imported {
		assert.False(t, originalIDs[imported[i].ID], "ids must be reassigned")
		assert.False(t, seen[imported[i].ID], "ids must be distinct")
		seen[imported[i].ID] = true

		want := original[i]
		want.ID = imported[i].ID
		assert.Equal(t, want, imported[i])
	}
}

func TestImport_MergesAheadOfExisting(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)
	existing, err := svc.Save(ctx, draft("mine", "kept", core.CategoryWork), "")
	require.NoError(t, err)

	raw := []byte(`[{"id":"` + existing.ID + `","title":"theirs","content":"","category":"misc","pinned":true}]`)
	count, err := svc.Import(ctx, raw, transfer.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	notes := svc.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "theirs", notes[0].Title)
	assert.NotEqual(t, existing.ID, notes[0].ID)
	assert.Equal(t, "", notes[0].Content)
	assert.Equal(t, existing, notes[1])
}

func TestImport_RejectedDocumentsLeaveCollection(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	svc := newService(t, kv)
	_, err := svc.Save(ctx, draft("mine", "kept", core.CategoryWork), "")
	require.NoError(t, err)
	before := svc.Notes()
	persisted, err := kv.Get(ctx, storage.NotesKey)
	require.NoError(t, err)

	_, err = svc.Import(ctx, []byte(`{"a":1}`), transfer.FormatJSON)
	assert.True(t, errors.Is(err, core.ErrSchema), "got %v", err)

	_, err = svc.Import(ctx, []byte(`not json`), transfer.FormatJSON)
	assert.True(t, errors.Is(err, core.ErrParse), "got %v", err)

	assert.Equal(t, before, svc.Notes())
	after, err := kv.Get(ctx, storage.NotesKey)
	require.NoError(t, err)
	assert.Equal(t, persisted, after)
}

func TestImportAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivers One Result", func(t *testing.T) {
		svc := newService(t, nil)
		results := svc.ImportAsync(ctx, bytes.NewBufferString(`[{"content":"a"},{"content":"b"}]`), transfer.FormatJSON)

		select {
		case res := <-results:
			require.NoError(t, res.Err)
			assert.Equal(t, 2, res.Count)
		case <-time.After(5 * time.Second):
			t.Fatal("import did not complete")
		}

		_, open := <-results
		assert.False(t, open, "channel closes after the single result")
		assert.Equal(t, 2, svc.Len())
	})

	t.Run("Schema Error", func(t *testing.T) {
		svc := newService(t, nil)
		res := <-svc.ImportAsync(ctx, strings.NewReader(`{"a":1}`), transfer.FormatJSON)
		assert.True(t, errors.Is(res.Err, core.ErrSchema))
		assert.Equal(t, 0, svc.Len())
	})

	t.Run("Cancelled Before Read", func(t *testing.T) {
		svc := newService(t, nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		res := <-svc.ImportAsync(cctx, strings.NewReader(`[]`), transfer.FormatJSON)
		assert.True(t, errors.Is(res.Err, context.Canceled))
	})

	t.Run("Cancel After Read Still Merges", func(t *testing.T) {
		svc := newService(t, nil)
		cctx, cancel := context.WithCancel(ctx)
		defer cancel()
		r := &cancelOnEOF{data: []byte(`[{"content":"kept"}]`), cancel: cancel}

		res := <-svc.ImportAsync(cctx, r, transfer.FormatJSON)
		require.NoError(t, res.Err)
		assert.Equal(t, 1, res.Count)
		assert.Equal(t, 1, svc.Len())
	})

	t.Run("Concurrent Imports Both Land", func(t *testing.T) {
		svc := newService(t, nil)
		first := svc.ImportAsync(ctx, strings.NewReader(`[{"content":"one"}]`), transfer.FormatJSON)
		second := svc.ImportAsync(ctx, strings.NewReader(`[{"content":"two"},{"content":"three"}]`), transfer.FormatJSON)
		require.NoError(t, (<-first).Err)
		require.NoError(t, (<-second).Err)
		assert.Equal(t, 3, svc.Len())

		state := svc.State().(notebook.ServiceState)
		assert.Equal(t, 2, state.Imports)
	})
}

// cancelOnEOF returns all of data in one read together with io.EOF and
// cancels its context at that moment.
type cancelOnEOF struct {
	data   []byte
	cancel context.CancelFunc
}

func (r *cancelOnEOF) Read(p []byte) (int, error) {
	n := copy(p, r.data)
	r.data = r.data[n:]
	if len(r.data) == 0 {
		r.cancel()
		return n, io.EOF
	}
	return n, nil
}
