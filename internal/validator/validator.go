// Package validator checks a lesson catalog for editorial mistakes before
// they reach readers: duplicate ordering, unknown principles, quizzes whose
// answer key points outside the options.
package validator

import (
	"fmt"
	"strings"

	"github.com/lsobral/solid/pkg/domain"
	"github.com/lsobral/solid/pkg/ports"
)

// ValidateCatalog runs every check against the catalog and returns a single
// error aggregating all findings, or nil when the catalog is clean.
func ValidateCatalog(catalog ports.Catalog) error {
	lessons, err := catalog.Lessons()
	if err != nil {
		return fmt.Errorf("failed to load lessons: %w", err)
	}

	var findings []string
	report := func(format string, args ...any) {
		findings = append(findings, fmt.Sprintf(format, args...))
	}

	if len(lessons) == 0 {
		report("catalog has no lessons")
	}

	ordersSeen := make(map[int]string)
	principlesSeen := make(map[domain.Principle]string)

	for _, lesson := range lessons {
		if lesson.Title == "" {
			report("lesson %q has no title", lesson.ID)
		}
		if len(lesson.Content) == 0 {
			report("lesson %q has no content", lesson.ID)
		}

		if prev, dup := ordersSeen[lesson.Order]; dup {
			report("lesson %q reuses order %d (already used by %q)", lesson.ID, lesson.Order, prev)
		}
		ordersSeen[lesson.Order] = lesson.ID

		if lesson.Principle != "" {
			if !lesson.Principle.Valid() {
				report("lesson %q names unknown principle %q", lesson.ID, lesson.Principle)
			} else if prev, dup := principlesSeen[lesson.Principle]; dup {
				report("lesson %q repeats principle %s (already covered by %q)", lesson.ID, lesson.Principle, prev)
			}
			principlesSeen[lesson.Principle] = lesson.ID
		}

		findings = append(findings, validateQuiz(lesson)...)
	}

	// The whole point of the course: every principle gets a lesson.
	for _, p := range domain.Principles() {
		if _, ok := principlesSeen[p]; !ok {
			report("no lesson covers %s", p.Title())
		}
	}

	if len(findings) > 0 {
		return fmt.Errorf("catalog validation failed:\n  - %s", strings.Join(findings, "\n  - "))
	}
	return nil
}

func validateQuiz(lesson domain.Lesson) []string {
	if !lesson.HasQuiz() {
		return nil
	}

	var findings []string
	for i, q := range lesson.Quiz.Questions {
		if q.Prompt == "" {
			findings = append(findings, fmt.Sprintf("lesson %q question %d has no prompt", lesson.ID, i+1))
		}
		if len(q.Options) < 2 {
			findings = append(findings, fmt.Sprintf("lesson %q question %d needs at least two options", lesson.ID, i+1))
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			findings = append(findings, fmt.Sprintf("lesson %q question %d answer index %d is out of range", lesson.ID, i+1, q.Answer))
		}
	}
	return findings
}
