// Package markdown adapts a filesystem of Markdown lesson files to the
// ports.Catalog interface.
//
// Each lesson is a single .md file with a YAML front matter block:
//
//	---
//	id: ocp
//	principle: ocp
//	title: "Open/Closed Principle"
//	order: 2
//	---
//	Lesson body in Markdown...
//
// The loader works over any fs.FS, so the embedded lesson set and a directory
// on disk are handled by the same code path.
package markdown

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/lsobral/solid/pkg/domain"
)

const frontMatterDelimiter = "---"

// Catalog implements ports.Catalog over an fs.FS of Markdown files.
// Lessons are parsed eagerly at construction time so that malformed content
// fails fast instead of surfacing mid-session.
type Catalog struct {
	lessons []domain.Lesson
	byID    map[string]domain.Lesson
}

// New loads every *.md file under root in fsys and builds a catalog.
func New(fsys fs.FS, root string) (*Catalog, error) {
	if root == "" {
		root = "."
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read lesson directory %q: %w", root, err)
	}

	catalog := &Catalog{byID: make(map[string]domain.Lesson)}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := path.Join(root, entry.Name())
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read lesson %q: %w", name, err)
		}

		lesson, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse lesson %q: %w", name, err)
		}

		// Default the ID to the file name, mirroring how node files name nodes.
		if lesson.ID == "" {
			lesson.ID = strings.TrimSuffix(entry.Name(), ".md")
		}

		if _, exists := catalog.byID[lesson.ID]; exists {
			return nil, fmt.Errorf("duplicate lesson id %q in %q", lesson.ID, name)
		}

		catalog.byID[lesson.ID] = lesson
		catalog.lessons = append(catalog.lessons, lesson)
	}

	domain.SortLessons(catalog.lessons)
	return catalog, nil
}

// Lesson retrieves a single lesson by ID.
func (c *Catalog) Lesson(id string) (domain.Lesson, error) {
	lesson, ok := c.byID[id]
	if !ok {
		return domain.Lesson{}, fmt.Errorf("%w: %q", domain.ErrLessonNotFound, id)
	}
	return lesson, nil
}

// Lessons returns every lesson in course order.
func (c *Catalog) Lessons() ([]domain.Lesson, error) {
	out := make([]domain.Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out, nil
}

// Parse splits a lesson file into front matter and body and maps it to the
// domain model. Files without front matter are treated as body-only lessons.
func Parse(raw []byte) (domain.Lesson, error) {
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return domain.Lesson{}, err
	}

	var dto LessonMetadata
	if meta != nil {
		// YAML first into a generic map, then mapstructure into the DTO.
		// Decoding in two steps keeps the front matter schema tolerant of
		// extra keys while still giving typed errors for the known ones.
		var generic map[string]any
		if err := yaml.Unmarshal(meta, &generic); err != nil {
			return domain.Lesson{}, fmt.Errorf("invalid front matter: %w", err)
		}
		if err := mapstructure.Decode(generic, &dto); err != nil {
			return domain.Lesson{}, fmt.Errorf("front matter does not match schema: %w", err)
		}
	}

	return dto.toDomain(body), nil
}

// splitFrontMatter returns (frontMatter, body). frontMatter is nil when the
// file does not start with a front matter block.
func splitFrontMatter(raw []byte) ([]byte, []byte, error) {
	trimmed := bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) // Tolerate a UTF-8 BOM.

	if !bytes.HasPrefix(trimmed, []byte(frontMatterDelimiter+"\n")) &&
		!bytes.HasPrefix(trimmed, []byte(frontMatterDelimiter+"\r\n")) {
		return nil, trimmed, nil
	}

	// Skip the opening delimiter line.
	rest := trimmed[len(frontMatterDelimiter):]
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	rest = bytes.TrimPrefix(rest, []byte("\n"))

	end := bytes.Index(rest, []byte("\n"+frontMatterDelimiter))
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter block")
	}

	meta := rest[:end]
	body := rest[end+len("\n"+frontMatterDelimiter):]

	// Drop the remainder of the closing delimiter line.
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}

	return meta, bytes.TrimLeft(body, "\r\n"), nil
}
