// Package adapters contains the built-in ProgressStore implementations that
// ship with the CLI: in-memory and JSON-files-on-disk. The Redis backend
// lives in pkg/adapters/redis since it is importable as a library.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lsobral/solid/pkg/domain"
)

// FileStore implements ports.ProgressStore using the local filesystem.
// It stores each reader's progress as a JSON file in a configured directory.
type FileStore struct {
	BasePath string
}

// NewFileStore creates a new FileStore with the given base path.
// If basePath is empty, it defaults to ".solid/progress".
func NewFileStore(basePath string) *FileStore {
	if basePath == "" {
		basePath = filepath.Join(".solid", "progress")
	}
	return &FileStore{BasePath: basePath}
}

// Save persists the reader's progress to a JSON file.
func (f *FileStore) Save(ctx context.Context, reader string, progress *domain.Progress) error {
	if reader == "" {
		return fmt.Errorf("reader cannot be empty")
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure progress directory: %w", err)
	}

	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := os.WriteFile(f.path(reader), data, 0644); err != nil {
		return fmt.Errorf("failed to write progress file: %w", err)
	}

	return nil
}

// Load retrieves the reader's progress from a JSON file.
func (f *FileStore) Load(ctx context.Context, reader string) (*domain.Progress, error) {
	if reader == "" {
		return nil, fmt.Errorf("reader cannot be empty")
	}

	data, err := os.ReadFile(f.path(reader))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}

	var progress domain.Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return &progress, nil
}

// Delete removes the reader's progress file. Deleting a reader that never
// saved is a no-op.
func (f *FileStore) Delete(ctx context.Context, reader string) error {
	if reader == "" {
		return fmt.Errorf("reader cannot be empty")
	}

	err := os.Remove(f.path(reader))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete progress file: %w", err)
	}
	return nil
}

// List returns the readers with a progress file, sorted.
func (f *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list progress directory: %w", err)
	}

	var readers []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		readers = append(readers, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(readers)
	return readers, nil
}

func (f *FileStore) path(reader string) string {
	return filepath.Join(f.BasePath, reader+".json")
}
