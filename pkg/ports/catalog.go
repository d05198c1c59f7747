package ports

import "github.com/lsobral/solid/pkg/domain"

// Catalog defines how the engine retrieves lesson definitions.
// This allows the content source (embedded files, a directory, memory) to be
// decoupled from the course logic.
type Catalog interface {
	// Lesson retrieves a single lesson by ID.
	// It returns domain.ErrLessonNotFound if the ID is unknown.
	Lesson(id string) (domain.Lesson, error)

	// Lessons returns every lesson in course order.
	Lessons() ([]domain.Lesson, error)
}
