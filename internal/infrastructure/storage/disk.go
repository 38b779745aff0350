// Package storage persists uploaded application documents on local disk.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes uploads under a single base directory with generated
// names, so user-supplied filenames never touch the filesystem.
type DiskStore struct {
	baseDir string
}

// NewDiskStore ensures the base directory exists and returns the store.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Save writes content to a new file named by a random UUID, keeping only the
// extension of the original filename. Returns the stored path.
func (s *DiskStore) Save(filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(filepath.Base(filename))
	path := filepath.Join(s.baseDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}
