package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteValue(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes")

		require.NoError(t, writeValue(path, `[]`))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})

	t.Run("Replaces Existing Value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "darkMode")
		require.NoError(t, os.WriteFile(path, []byte("false"), 0644))

		require.NoError(t, writeValue(path, "true"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "true", string(got))
	})

	t.Run("Readable Permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("unix permissions only")
		}
		path := filepath.Join(t.TempDir(), "notes")
		require.NoError(t, writeValue(path, "x"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, valuePerm, info.Mode().Perm())
	})

	t.Run("Leaves No Temp Files Behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeValue(filepath.Join(dir, "notes"), "x"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover %s", e.Name())
		}
	})

	t.Run("Fails If Directory Missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing_folder", "notes")
		assert.Error(t, writeValue(path, "fail"))
	})

	t.Run("Failed Rename Cleans Up", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "notes")
		require.NoError(t, os.Mkdir(target, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "child"), nil, 0644))

		assert.Error(t, writeValue(target, "x"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "notes", entries[0].Name())
	})
}
