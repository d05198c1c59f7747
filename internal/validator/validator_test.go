package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsobral/solid/internal/validator"
	"github.com/lsobral/solid/lessons"
	"github.com/lsobral/solid/pkg/adapters/markdown"
	"github.com/lsobral/solid/pkg/domain"
)

type sliceCatalog []domain.Lesson

func (s sliceCatalog) Lesson(id string) (domain.Lesson, error) {
	for _, l := range s {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Lesson{}, domain.ErrLessonNotFound
}

func (s sliceCatalog) Lessons() ([]domain.Lesson, error) {
	return s, nil
}

func fullCatalog() sliceCatalog {
	var out sliceCatalog
	out = append(out, domain.Lesson{ID: "intro", Title: "Intro", Order: 0, Content: []byte("x")})
	for i, p := range domain.Principles() {
		out = append(out, domain.Lesson{
			ID: string(p), Principle: p, Title: p.Title(), Order: i + 1, Content: []byte("x"),
		})
	}
	return out
}

func TestValidateCatalog_EmbeddedLessonsAreClean(t *testing.T) {
	catalog, err := markdown.New(lessons.FS, ".")
	require.NoError(t, err)

	assert.NoError(t, validator.ValidateCatalog(catalog))
}

func TestValidateCatalog_CleanSynthetic(t *testing.T) {
	assert.NoError(t, validator.ValidateCatalog(fullCatalog()))
}

func TestValidateCatalog_Findings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sliceCatalog) sliceCatalog
		want   string
	}{
		{
			name: "Missing principle",
			mutate: func(c sliceCatalog) sliceCatalog {
				return c[:len(c)-1] // drop dip
			},
			want: "no lesson covers Dependency Inversion Principle",
		},
		{
			name: "Duplicate order",
			mutate: func(c sliceCatalog) sliceCatalog {
				c[1].Order = 0
				return c
			},
			want: "reuses order 0",
		},
		{
			name: "Unknown principle",
			mutate: func(c sliceCatalog) sliceCatalog {
				c[1].Principle = "dry"
				return c
			},
			want: "unknown principle",
		},
		{
			name: "Untitled lesson",
			mutate: func(c sliceCatalog) sliceCatalog {
				c[0].Title = ""
				return c
			},
			want: "has no title",
		},
		{
			name: "Quiz answer out of range",
			mutate: func(c sliceCatalog) sliceCatalog {
				c[1].Quiz = &domain.Quiz{Questions: []domain.Question{
					{Prompt: "?", Options: []string{"a", "b"}, Answer: 5},
				}}
				return c
			},
			want: "answer index 5 is out of range",
		},
		{
			name: "Quiz with one option",
			mutate: func(c sliceCatalog) sliceCatalog {
				c[1].Quiz = &domain.Quiz{Questions: []domain.Question{
					{Prompt: "?", Options: []string{"only"}, Answer: 0},
				}}
				return c
			},
			want: "at least two options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateCatalog(tt.mutate(fullCatalog()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
