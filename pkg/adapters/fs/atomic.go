package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = "memo-tmp-"

	valuePerm os.FileMode = 0644
)

// writeValue replaces the value file at path. The new text is staged in a
// temp file in the same directory, synced, then renamed over path, so a
// concurrent Get sees either the old value or the new one.
func writeValue(path, value string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage value: %w", err)
	}
	staged := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(staged)
		}
	}()

	if _, err = tmp.WriteString(value); err != nil {
		return fmt.Errorf("failed to stage value: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync staged value: %w", err)
	}
	if err = tmp.Chmod(valuePerm); err != nil {
		return fmt.Errorf("failed to set value permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close staged value: %w", err)
	}
	if err = os.Rename(staged, path); err != nil {
		return fmt.Errorf("failed to publish value %s: %w", filepath.Base(path), err)
	}
	return nil
}
