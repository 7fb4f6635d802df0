// Package storage reads the source document and writes generated files.
package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks github.com/d-kuro/readme-chapters/internal/storage Store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/d-kuro/readme-chapters/internal/errors"
)

// Store reads and writes documents addressed by slash-separated paths
// relative to a root directory.
type Store interface {
	ReadFile(path string) (string, error)
	WriteFile(path, content string) error
}

// FileSystem implements Store on the local filesystem.
type FileSystem struct {
	root string
	// makeDirs creates missing parent directories before writing.
	makeDirs bool
}

// NewFileSystem creates a store rooted at root. An empty root means the
// current working directory.
func NewFileSystem(root string, makeDirs bool) *FileSystem {
	if root == "" {
		root = "."
	}
	return &FileSystem{root: root, makeDirs: makeDirs}
}

// Resolve maps a slash-separated relative path to a filesystem path.
func (fs *FileSystem) Resolve(path string) string {
	return filepath.Join(fs.root, filepath.FromSlash(path))
}

// ReadFile returns the whole content of path.
func (fs *FileSystem) ReadFile(path string) (string, error) {
	full := fs.Resolve(path)
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s: %w", errors.ErrNotFound, full, err)
		}
		return "", errors.Wrap(err, "failed to read %s", full)
	}
	return string(data), nil
}

// WriteFile replaces path with content. Any existing file is truncated.
func (fs *FileSystem) WriteFile(path, content string) error {
	full := fs.Resolve(path)

	if fs.makeDirs {
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrOutputDir, err)
		}
	}

	file, err := os.Create(full)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s: %w", errors.ErrOutputDir, filepath.Dir(full), err)
		}
		return errors.Wrap(err, "failed to create %s", full)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.WriteString(content); err != nil {
		return errors.Wrap(err, "failed to write %s", full)
	}

	if err := file.Sync(); err != nil {
		return errors.Wrap(err, "failed to sync %s", full)
	}

	return nil
}

// Exists reports whether path names an existing regular file.
func (fs *FileSystem) Exists(path string) bool {
	info, err := os.Stat(fs.Resolve(path))
	return err == nil && info.Mode().IsRegular()
}
