package domain

import "sort"

// Lesson represents a single write-up in the field guide.
// The content is plain Markdown; presentation (terminal, HTTP, MCP) is left
// entirely to the adapters.
type Lesson struct {
	ID        string    `json:"id" yaml:"id"`
	Principle Principle `json:"principle,omitempty" yaml:"principle,omitempty"`
	Title     string    `json:"title" yaml:"title"`

	// Summary is a one-or-two sentence abstract shown in listings.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Order positions the lesson within the course. Lessons are served in
	// ascending order; ties are broken by principle rank, then ID.
	Order int `json:"order" yaml:"order"`

	// Content holds the raw Markdown body (front matter stripped).
	Content []byte `json:"content" yaml:"content"`

	// Quiz is the optional comprehension check closing the lesson.
	Quiz *Quiz `json:"quiz,omitempty" yaml:"quiz,omitempty"`
}

// HasQuiz reports whether the lesson ends with a comprehension check.
func (l Lesson) HasQuiz() bool {
	return l.Quiz != nil && len(l.Quiz.Questions) > 0
}

// FindByPrinciple returns the lesson covering the given principle.
// Returns ErrLessonNotFound when no lesson covers it.
func FindByPrinciple(lessons []Lesson, p Principle) (Lesson, error) {
	for _, l := range lessons {
		if l.Principle == p {
			return l, nil
		}
	}
	return Lesson{}, ErrLessonNotFound
}

// SortLessons orders lessons in course order, in place.
func SortLessons(lessons []Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessBy(lessons[i], lessons[j])
	})
}

func lessBy(a, b Lesson) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	if a.Principle.Rank() != b.Principle.Rank() {
		return a.Principle.Rank() < b.Principle.Rank()
	}
	return a.ID < b.ID
}
