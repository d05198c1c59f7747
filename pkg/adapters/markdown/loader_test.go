package markdown_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsobral/solid/pkg/adapters/markdown"
	"github.com/lsobral/solid/pkg/domain"
	"github.com/lsobral/solid/pkg/ports"
)

const srpLesson = `---
id: srp
principle: srp
title: "Single Responsibility Principle"
summary: "One reason to change."
order: 1
quiz:
  questions:
    - prompt: "How many reasons to change should a type have?"
      options: ["One", "As many as needed"]
      answer: 0
      explanation: "A type with one responsibility has one reason to change."
---
# Single Responsibility

Body text.
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"srp.md": &fstest.MapFile{Data: []byte(srpLesson)},
		"intro.md": &fstest.MapFile{Data: []byte(
			"---\nid: intro\ntitle: \"Welcome\"\norder: 0\n---\nHello.\n")},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored, not markdown")},
	}
}

func TestCatalog_Contract(t *testing.T) {
	catalog, err := markdown.New(testFS(), ".")
	require.NoError(t, err)

	ports.RunCatalogContract(t, catalog, []string{"intro", "srp"})
}

func TestCatalog_ParsesFrontMatter(t *testing.T) {
	catalog, err := markdown.New(testFS(), ".")
	require.NoError(t, err)

	lesson, err := catalog.Lesson("srp")
	require.NoError(t, err)

	assert.Equal(t, domain.SingleResponsibility, lesson.Principle)
	assert.Equal(t, "Single Responsibility Principle", lesson.Title)
	assert.Equal(t, "One reason to change.", lesson.Summary)
	assert.Equal(t, 1, lesson.Order)
	assert.Contains(t, string(lesson.Content), "# Single Responsibility")
	assert.NotContains(t, string(lesson.Content), "order: 1", "front matter must be stripped from the body")

	require.True(t, lesson.HasQuiz())
	question := lesson.Quiz.Questions[0]
	assert.Equal(t, 0, question.Answer)
	assert.Len(t, question.Options, 2)
}

func TestCatalog_DefaultsIDToFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"lsp.md": &fstest.MapFile{Data: []byte("---\ntitle: Liskov\norder: 3\n---\nBody.\n")},
	}

	catalog, err := markdown.New(fsys, ".")
	require.NoError(t, err)

	lesson, err := catalog.Lesson("lsp")
	require.NoError(t, err)
	assert.Equal(t, "lsp", lesson.ID)
}

func TestCatalog_DuplicateIDsRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": &fstest.MapFile{Data: []byte("---\nid: same\ntitle: A\n---\nBody.\n")},
		"b.md": &fstest.MapFile{Data: []byte("---\nid: same\ntitle: B\n---\nBody.\n")},
	}

	_, err := markdown.New(fsys, ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate lesson id")
}

func TestParse_WithoutFrontMatter(t *testing.T) {
	lesson, err := markdown.Parse([]byte("# Just Markdown\n"))
	require.NoError(t, err)

	assert.Empty(t, lesson.ID)
	assert.Equal(t, "# Just Markdown\n", string(lesson.Content))
}

func TestParse_UnterminatedFrontMatter(t *testing.T) {
	_, err := markdown.Parse([]byte("---\nid: broken\nno closing delimiter\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated front matter")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := markdown.Parse([]byte("---\nid: [unclosed\n---\nBody.\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid front matter")
}
