package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/memo/pkg/adapters/fs"
)

// ErrRootNotFound is returned by FindRoot when no parent holds a .memo directory.
var ErrRootNotFound = errors.New("root not found")

// FindRoot looks upwards from startDir for a directory containing .memo and
// returns the absolute path of that directory.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, fs.DefaultDir)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// DefaultDir picks the storage directory when none is configured: the .memo
// directory of the enclosing project, or ~/.memo.
func DefaultDir() (string, error) {
	if wd, err := os.Getwd(); err == nil {
		if root, err := FindRoot(wd); err == nil {
			return filepath.Join(root, fs.DefaultDir), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, fs.DefaultDir), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
