package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lsobral/solid/internal/course"
)

var (
	letterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa")).Width(3)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399"))
	todoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// FormatSummary renders the course summary as a styled lesson list.
func FormatSummary(s course.Summary) string {
	var b strings.Builder

	for _, row := range s.Lessons {
		marker := todoStyle.Render("[ ]")
		if row.Completed {
			marker = doneStyle.Render("[x]")
		}

		letter := " "
		if row.Lesson.Principle.Valid() {
			letter = row.Lesson.Principle.Letter()
		}

		line := fmt.Sprintf("%s %s %s  %s",
			marker,
			letterStyle.Render(letter),
			titleStyle.Render(row.Lesson.Title),
			faintStyle.Render("("+row.Lesson.ID+")"),
		)
		b.WriteString(line)
		b.WriteString("\n")

		if row.Score != nil {
			b.WriteString(faintStyle.Render(fmt.Sprintf("        quiz %d/%d", row.Score.Correct, row.Score.Total)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d of %d lessons complete (%d%%)\n", s.Done, s.Total, s.Percent))
	if s.Finished {
		b.WriteString(doneStyle.Render("Course complete. Go break a god-object.") + "\n")
	}

	return b.String()
}
