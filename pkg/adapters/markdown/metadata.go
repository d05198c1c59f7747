package markdown

import "github.com/lsobral/solid/pkg/domain"

// LessonMetadata is the front matter schema for lesson files.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type LessonMetadata struct {
	ID        string `mapstructure:"id"`
	Principle string `mapstructure:"principle"`
	Title     string `mapstructure:"title"`
	Summary   string `mapstructure:"summary"`
	Order     int    `mapstructure:"order"`

	Quiz *QuizMetadata `mapstructure:"quiz"`
}

// QuizMetadata mirrors domain.Quiz at the front matter layer.
type QuizMetadata struct {
	Questions []QuestionMetadata `mapstructure:"questions"`
}

// QuestionMetadata mirrors domain.Question at the front matter layer.
type QuestionMetadata struct {
	Prompt      string   `mapstructure:"prompt"`
	Options     []string `mapstructure:"options"`
	Answer      int      `mapstructure:"answer"`
	Explanation string   `mapstructure:"explanation"`
}

func (m LessonMetadata) toDomain(content []byte) domain.Lesson {
	lesson := domain.Lesson{
		ID:        m.ID,
		Principle: domain.Principle(m.Principle),
		Title:     m.Title,
		Summary:   m.Summary,
		Order:     m.Order,
		Content:   content,
	}

	if m.Quiz != nil && len(m.Quiz.Questions) > 0 {
		quiz := &domain.Quiz{}
		for _, q := range m.Quiz.Questions {
			quiz.Questions = append(quiz.Questions, domain.Question{
				Prompt:      q.Prompt,
				Options:     q.Options,
				Answer:      q.Answer,
				Explanation: q.Explanation,
			})
		}
		lesson.Quiz = quiz
	}

	return lesson
}
