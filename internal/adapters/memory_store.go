package adapters

import (
	"context"
	"sort"
	"sync"

	"github.com/lsobral/solid/pkg/domain"
)

// MemoryStore implements ports.ProgressStore in process memory.
// It is used by tests and by surfaces that do not want persistence
// (e.g. `--store memory` for a throwaway walkthrough).
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory progress store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Save persists the progress for a reader.
// The record is stored serialized so callers cannot mutate it afterwards.
func (m *MemoryStore) Save(ctx context.Context, reader string, progress *domain.Progress) error {
	raw, err := marshalProgress(progress)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[reader] = raw
	return nil
}

// Load retrieves the progress for a reader.
func (m *MemoryStore) Load(ctx context.Context, reader string) (*domain.Progress, error) {
	m.mu.RLock()
	raw, ok := m.data[reader]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	return unmarshalProgress(raw)
}

// Delete removes the progress for a reader.
func (m *MemoryStore) Delete(ctx context.Context, reader string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, reader)
	return nil
}

// List returns the readers with saved progress, sorted for stable output.
func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	readers := make([]string, 0, len(m.data))
	for reader := range m.data {
		readers = append(readers, reader)
	}
	sort.Strings(readers)
	return readers, nil
}
