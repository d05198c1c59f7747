package course

import (
	"context"

	"github.com/lsobral/solid/pkg/domain"
)

// LessonStatus is one row of a course summary.
type LessonStatus struct {
	Lesson    domain.Lesson `json:"lesson"`
	Completed bool          `json:"completed"`
	Score     *domain.Score `json:"score,omitempty"`
}

// Summary is a reader's view of the whole course.
type Summary struct {
	Reader   string         `json:"reader"`
	Lessons  []LessonStatus `json:"lessons"`
	Done     int            `json:"done"`
	Total    int            `json:"total"`
	Percent  int            `json:"percent"`
	Finished bool           `json:"finished"`
}

// Summary builds the completion report for a reader.
func (e *Engine) Summary(ctx context.Context, reader string) (Summary, error) {
	progress, err := e.Progress(ctx, reader)
	if err != nil {
		return Summary{}, err
	}

	lessons, err := e.catalog.Lessons()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Reader: reader, Total: len(lessons)}
	for _, lesson := range lessons {
		status := LessonStatus{Lesson: lesson}
		if completion, ok := progress.Completions[lesson.ID]; ok {
			status.Completed = true
			status.Score = completion.Score
			summary.Done++
		}
		summary.Lessons = append(summary.Lessons, status)
	}

	summary.Percent = progress.Percent(summary.Total)
	summary.Finished = summary.Total > 0 && summary.Done == summary.Total
	return summary, nil
}
