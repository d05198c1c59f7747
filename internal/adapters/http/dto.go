package http

import (
	"github.com/lsobral/solid/internal/course"
	"github.com/lsobral/solid/pkg/domain"
)

// lessonSummary mirrors the LessonSummary schema in api/openapi.yaml.
type lessonSummary struct {
	ID        string `json:"id"`
	Principle string `json:"principle,omitempty"`
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	Order     int    `json:"order"`
	HasQuiz   bool   `json:"has_quiz"`
}

// lessonBody mirrors the Lesson schema: the summary plus the Markdown body.
type lessonBody struct {
	lessonSummary
	Content string `json:"content"`
}

type summaryRow struct {
	Lesson    lessonSummary `json:"lesson"`
	Completed bool          `json:"completed"`
	Score     *domain.Score `json:"score,omitempty"`
}

type summaryDTO struct {
	Reader   string       `json:"reader"`
	Done     int          `json:"done"`
	Total    int          `json:"total"`
	Percent  int          `json:"percent"`
	Finished bool         `json:"finished"`
	Lessons  []summaryRow `json:"lessons"`
}

func toSummary(l domain.Lesson) lessonSummary {
	return lessonSummary{
		ID:        l.ID,
		Principle: string(l.Principle),
		Title:     l.Title,
		Summary:   l.Summary,
		Order:     l.Order,
		HasQuiz:   l.HasQuiz(),
	}
}

func toLessonBody(l domain.Lesson) lessonBody {
	return lessonBody{
		lessonSummary: toSummary(l),
		Content:       string(l.Content),
	}
}

func toSummaryDTO(s course.Summary) summaryDTO {
	out := summaryDTO{
		Reader:   s.Reader,
		Done:     s.Done,
		Total:    s.Total,
		Percent:  s.Percent,
		Finished: s.Finished,
	}
	for _, row := range s.Lessons {
		out.Lessons = append(out.Lessons, summaryRow{
			Lesson:    toSummary(row.Lesson),
			Completed: row.Completed,
			Score:     row.Score,
		})
	}
	return out
}
