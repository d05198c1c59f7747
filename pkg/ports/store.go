package ports

import (
	"context"

	"github.com/lsobral/solid/pkg/domain"
)

// ProgressStore defines the interface for persisting reader progress.
// This is what lets a reader stop mid-course and resume later, possibly from
// another surface (CLI today, HTTP tomorrow).
type ProgressStore interface {
	// Save persists the progress for a given reader.
	Save(ctx context.Context, reader string, progress *domain.Progress) error

	// Load retrieves the progress for a given reader.
	// Returns domain.ErrProgressNotFound if the reader has no saved progress.
	Load(ctx context.Context, reader string) (*domain.Progress, error)

	// Delete removes the progress for a given reader.
	Delete(ctx context.Context, reader string) error
}

// ProgressLister is an optional extension for stores that can enumerate readers.
type ProgressLister interface {
	// List returns the readers with saved progress.
	List(ctx context.Context) ([]string, error)
}
