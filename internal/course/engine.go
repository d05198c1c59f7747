// Package course implements the sequencing and grading logic of the field
// guide. The engine is stateless: everything it knows comes from the injected
// Catalog and ProgressStore, so any surface (CLI, HTTP, MCP) can share it.
package course

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lsobral/solid/internal/logging"
	"github.com/lsobral/solid/internal/metrics"
	"github.com/lsobral/solid/pkg/domain"
	"github.com/lsobral/solid/pkg/ports"
)

// ErrCourseComplete is returned by Next when every lesson is done.
var ErrCourseComplete = errors.New("course complete")

// ErrQuizRequired is returned by Complete when a lesson with a quiz is
// completed without a passing score.
var ErrQuizRequired = errors.New("lesson has a quiz; pass it to complete the lesson")

// Engine sequences lessons and records reader progress.
type Engine struct {
	catalog ports.Catalog
	store   ports.ProgressStore
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the time source (used by tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a course engine over a catalog and a progress store.
func NewEngine(catalog ports.Catalog, store ports.ProgressStore, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		store:   store,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Progress loads the reader's progress, returning a fresh record when none
// has been saved yet.
func (e *Engine) Progress(ctx context.Context, reader string) (*domain.Progress, error) {
	progress, err := e.store.Load(ctx, reader)
	if err != nil {
		if errors.Is(err, domain.ErrProgressNotFound) {
			return domain.NewProgress(reader), nil
		}
		return nil, err
	}
	return progress, nil
}

// Next returns the first incomplete lesson in course order.
// It returns ErrCourseComplete once the reader has finished everything.
func (e *Engine) Next(ctx context.Context, reader string) (domain.Lesson, error) {
	progress, err := e.Progress(ctx, reader)
	if err != nil {
		return domain.Lesson{}, err
	}

	lessons, err := e.catalog.Lessons()
	if err != nil {
		return domain.Lesson{}, err
	}

	for _, lesson := range lessons {
		if !progress.Completed(lesson.ID) {
			return lesson, nil
		}
	}
	return domain.Lesson{}, ErrCourseComplete
}

// Complete marks a lesson as finished. Lessons that end with a quiz cannot be
// completed this way; they complete through SubmitQuiz on a passing score.
func (e *Engine) Complete(ctx context.Context, reader, lessonID string) error {
	lesson, err := e.catalog.Lesson(lessonID)
	if err != nil {
		return err
	}
	if lesson.HasQuiz() {
		return fmt.Errorf("%w: %s", ErrQuizRequired, lessonID)
	}

	return e.record(ctx, reader, lessonID, nil)
}

// SubmitQuiz grades a submission against the lesson's quiz and records the
// score. The lesson is marked complete only when the submission passes.
func (e *Engine) SubmitQuiz(ctx context.Context, reader, lessonID string, answers []int) (domain.Score, error) {
	lesson, err := e.catalog.Lesson(lessonID)
	if err != nil {
		return domain.Score{}, err
	}
	if !lesson.HasQuiz() {
		return domain.Score{}, fmt.Errorf("lesson %q has no quiz", lessonID)
	}

	score, err := lesson.Quiz.Grade(answers)
	if err != nil {
		return domain.Score{}, err
	}

	metrics.QuizSubmissions.WithLabelValues(lessonID, metrics.QuizResult(score.Passed)).Inc()
	e.logger.Info("quiz graded",
		"reader", reader,
		"lesson", lessonID,
		"correct", score.Correct,
		"total", score.Total,
		"passed", score.Passed,
	)

	if !score.Passed {
		return score, nil
	}

	if err := e.record(ctx, reader, lessonID, &score); err != nil {
		return score, err
	}
	return score, nil
}

// ResetProgress deletes everything recorded for the reader.
func (e *Engine) ResetProgress(ctx context.Context, reader string) error {
	return e.store.Delete(ctx, reader)
}

func (e *Engine) record(ctx context.Context, reader, lessonID string, score *domain.Score) error {
	progress, err := e.Progress(ctx, reader)
	if err != nil {
		return err
	}

	progress.MarkCompleted(lessonID, score, e.now().UTC())

	if err := e.store.Save(ctx, reader, progress); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	metrics.LessonCompletions.WithLabelValues(lessonID).Inc()
	e.logger.Info("lesson completed", "reader", reader, "lesson", lessonID)
	return nil
}
