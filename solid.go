package solid

import (
	"context"
	"log/slog"

	"github.com/lsobral/solid/internal/adapters"
	"github.com/lsobral/solid/internal/course"
	"github.com/lsobral/solid/lessons"
	"github.com/lsobral/solid/pkg/adapters/markdown"
	"github.com/lsobral/solid/pkg/domain"
	"github.com/lsobral/solid/pkg/ports"
)

// Course is the high-level entry point for the Solid library.
// It wraps the internal engine and provides a simplified API for consumers.
type Course struct {
	engine  *course.Engine
	catalog ports.Catalog
	store   ports.ProgressStore
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Course.
type Option func(*Course)

// WithCatalog injects a custom lesson Catalog, bypassing the embedded set.
func WithCatalog(c ports.Catalog) Option {
	return func(s *Course) {
		s.catalog = c
	}
}

// WithStore injects a custom ProgressStore (default: in-memory).
func WithStore(store ports.ProgressStore) Option {
	return func(s *Course) {
		s.store = store
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Course) {
		s.logger = logger
	}
}

// New initializes a Course.
// By default it serves the embedded lessons and keeps progress in memory;
// use the options to swap either side.
func New(opts ...Option) (*Course, error) {
	c := &Course{}

	for _, opt := range opts {
		opt(c)
	}

	if c.catalog == nil {
		catalog, err := markdown.New(lessons.FS, ".")
		if err != nil {
			return nil, err
		}
		c.catalog = catalog
	}
	if c.store == nil {
		c.store = adapters.NewMemoryStore()
	}

	var engineOpts []course.Option
	if c.logger != nil {
		engineOpts = append(engineOpts, course.WithLogger(c.logger))
	}
	c.engine = course.NewEngine(c.catalog, c.store, engineOpts...)

	return c, nil
}

// Catalog exposes the lesson source backing this course.
func (c *Course) Catalog() ports.Catalog {
	return c.catalog
}

// Lessons returns every lesson in course order.
func (c *Course) Lessons() ([]domain.Lesson, error) {
	return c.catalog.Lessons()
}

// Lesson retrieves a single lesson by ID.
func (c *Course) Lesson(id string) (domain.Lesson, error) {
	return c.catalog.Lesson(id)
}

// Next returns the reader's first incomplete lesson in course order.
// Returns course.ErrCourseComplete when everything is done.
func (c *Course) Next(ctx context.Context, reader string) (domain.Lesson, error) {
	return c.engine.Next(ctx, reader)
}

// Complete marks a quiz-less lesson as finished.
func (c *Course) Complete(ctx context.Context, reader, lessonID string) error {
	return c.engine.Complete(ctx, reader, lessonID)
}

// SubmitQuiz grades a quiz submission, completing the lesson on a pass.
func (c *Course) SubmitQuiz(ctx context.Context, reader, lessonID string, answers []int) (domain.Score, error) {
	return c.engine.SubmitQuiz(ctx, reader, lessonID, answers)
}

// Summary builds the reader's completion report.
func (c *Course) Summary(ctx context.Context, reader string) (course.Summary, error) {
	return c.engine.Summary(ctx, reader)
}

// ResetProgress forgets everything recorded for the reader.
func (c *Course) ResetProgress(ctx context.Context, reader string) error {
	return c.engine.ResetProgress(ctx, reader)
}
