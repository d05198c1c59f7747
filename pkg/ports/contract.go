package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsobral/solid/pkg/domain"
)

// RunProgressStoreContract verifies that a ProgressStore implementation honors
// the interface semantics. Every adapter (memory, file, redis) runs this suite.
func RunProgressStoreContract(t *testing.T, store ProgressStore) {
	ctx := context.Background()
	reader := "contract-reader-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		progress := domain.NewProgress(reader)
		progress.MarkCompleted("srp", nil, time.Now().UTC())
		progress.MarkCompleted("ocp", &domain.Score{Correct: 2, Total: 2, Passed: true}, time.Now().UTC())

		err := store.Save(ctx, reader, progress)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, reader)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, reader, loaded.Reader)
		assert.True(t, loaded.Completed("srp"))
		assert.True(t, loaded.Completed("ocp"))

		// Scores must survive the serialization round trip.
		require.NotNil(t, loaded.Completions["ocp"].Score)
		assert.True(t, loaded.Completions["ocp"].Score.Passed)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+reader)
		assert.ErrorIs(t, err, domain.ErrProgressNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		progress := domain.NewProgress(reader)
		progress.MarkCompleted("lsp", nil, time.Now().UTC())
		require.NoError(t, store.Save(ctx, reader, progress))

		loaded, err := store.Load(ctx, reader)
		require.NoError(t, err)
		assert.True(t, loaded.Completed("lsp"))
		assert.False(t, loaded.Completed("srp"), "Save must replace, not merge")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, reader, domain.NewProgress(reader)))

		err := store.Delete(ctx, reader)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, reader)
		assert.ErrorIs(t, err, domain.ErrProgressNotFound)
	})

	t.Run("Delete Non-Existent", func(t *testing.T) {
		// Deleting an unknown reader is a no-op, not an error.
		assert.NoError(t, store.Delete(ctx, "non-existent-"+reader))
	})
}

// RunCatalogContract verifies that a Catalog implementation honors the
// interface semantics against a known set of lesson IDs in course order.
func RunCatalogContract(t *testing.T, catalog Catalog, wantOrder []string) {
	t.Run("Lessons In Course Order", func(t *testing.T) {
		lessons, err := catalog.Lessons()
		require.NoError(t, err)

		var ids []string
		for _, l := range lessons {
			ids = append(ids, l.ID)
		}
		assert.Equal(t, wantOrder, ids)
	})

	t.Run("Lesson By ID", func(t *testing.T) {
		for _, id := range wantOrder {
			lesson, err := catalog.Lesson(id)
			require.NoError(t, err, "lesson %s should load", id)
			assert.Equal(t, id, lesson.ID)
			assert.NotEmpty(t, lesson.Title, "lesson %s needs a title", id)
			assert.NotEmpty(t, lesson.Content, "lesson %s needs content", id)
		}
	})

	t.Run("Lesson Not Found", func(t *testing.T) {
		_, err := catalog.Lesson("does-not-exist")
		assert.ErrorIs(t, err, domain.ErrLessonNotFound)
	})
}
