package domain

import "time"

// Completion records that a reader finished a lesson.
type Completion struct {
	LessonID    string    `json:"lesson_id"`
	CompletedAt time.Time `json:"completed_at"`

	// Score is present when the lesson ended with a quiz.
	Score *Score `json:"score,omitempty"`
}

// Progress represents the snapshot of a reader's journey through the course.
type Progress struct {
	// Reader identifies whose progress this is (defaults to the OS user).
	Reader string `json:"reader"`

	// Completions maps lesson ID to its completion record.
	Completions map[string]Completion `json:"completions"`

	// StartedAt is set on the first completion and never changes afterwards.
	StartedAt time.Time `json:"started_at,omitempty"`

	// UpdatedAt tracks the last mutation, useful for store TTLs and listings.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// NewProgress creates an empty progress record for a reader.
func NewProgress(reader string) *Progress {
	return &Progress{
		Reader:      reader,
		Completions: make(map[string]Completion),
	}
}

// Completed reports whether the lesson has been finished.
func (p *Progress) Completed(lessonID string) bool {
	_, ok := p.Completions[lessonID]
	return ok
}

// MarkCompleted records a completion. It is idempotent: completing a lesson
// twice keeps the original timestamp but adopts a newer score if one is given.
func (p *Progress) MarkCompleted(lessonID string, score *Score, now time.Time) {
	if p.Completions == nil {
		p.Completions = make(map[string]Completion)
	}
	if p.StartedAt.IsZero() {
		p.StartedAt = now
	}
	p.UpdatedAt = now

	existing, ok := p.Completions[lessonID]
	if ok {
		if score != nil {
			existing.Score = score
			p.Completions[lessonID] = existing
		}
		return
	}

	p.Completions[lessonID] = Completion{
		LessonID:    lessonID,
		CompletedAt: now,
		Score:       score,
	}
}

// Reset forgets all completions but keeps the reader identity.
func (p *Progress) Reset() {
	p.Completions = make(map[string]Completion)
	p.StartedAt = time.Time{}
	p.UpdatedAt = time.Time{}
}

// Percent returns the completion ratio against a total lesson count, in the
// range [0, 100]. A zero total yields zero rather than a division panic.
func (p *Progress) Percent(total int) int {
	if total <= 0 {
		return 0
	}
	done := len(p.Completions)
	if done > total {
		done = total
	}
	return done * 100 / total
}
