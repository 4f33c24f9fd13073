package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/expensedesk/backend/internal/store"
)

// FileSnapshotter persists the snapshot as <key>.json inside a data
// directory. Writes go through a temp file plus rename so a crash mid-write
// never leaves a truncated snapshot behind.
type FileSnapshotter struct {
	path string
}

// NewFileSnapshotter creates the data directory if needed and returns a
// snapshotter writing to <dir>/<key>.json
func NewFileSnapshotter(dir, key string) (*FileSnapshotter, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if key == "" {
		key = store.SnapshotKey
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileSnapshotter{path: filepath.Join(dir, key+".json")}, nil
}

// Read returns the snapshot bytes, or store.ErrNoSnapshot when no file exists
func (f *FileSnapshotter) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, store.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Write replaces the snapshot atomically
func (f *FileSnapshotter) Write(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Path returns the snapshot file location (for logging)
func (f *FileSnapshotter) Path() string {
	return f.path
}

// Ensure FileSnapshotter implements store.Snapshotter
var _ store.Snapshotter = (*FileSnapshotter)(nil)
