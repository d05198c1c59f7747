package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsobral/solid"
	httpAdapter "github.com/lsobral/solid/internal/adapters/http"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	course, err := solid.New()
	require.NoError(t, err)

	return httpAdapter.NewHandler(course)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListLessons(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/lessons", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var lessons []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		HasQuiz bool   `json:"has_quiz"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lessons))

	require.NotEmpty(t, lessons)
	assert.Equal(t, "intro", lessons[0].ID, "lessons must come back in course order")

	// Listings carry metadata only, never the Markdown body.
	assert.NotContains(t, rec.Body.String(), "\"content\"")
}

func TestGetLesson(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("JSON", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/lessons/srp", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var lesson struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lesson))
		assert.Equal(t, "srp", lesson.ID)
		assert.Contains(t, lesson.Content, "Single Responsibility")
	})

	t.Run("Markdown", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/lessons/srp?format=markdown", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
		assert.True(t, strings.HasPrefix(rec.Body.String(), "# Single Responsibility"))
	})

	t.Run("Not Found", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/lessons/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetPrinciple(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("Known Principle", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/principles/dip", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var lesson struct {
			ID        string `json:"id"`
			Principle string `json:"principle"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lesson))
		assert.Equal(t, "dip", lesson.Principle)
	})

	t.Run("Unknown Principle", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/principles/solid", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSubmitQuiz(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("Pass Completes Lesson", func(t *testing.T) {
		// Answer key for the srp lesson: see lessons/srp.md.
		rec := doJSON(t, handler, http.MethodPost, "/lessons/srp/quiz", map[string]any{
			"reader":  "ana",
			"answers": []int{1, 0},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var score struct {
			Passed bool `json:"passed"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
		assert.True(t, score.Passed)

		progress := doJSON(t, handler, http.MethodGet, "/progress/ana", nil)
		require.Equal(t, http.StatusOK, progress.Code)
		assert.Contains(t, progress.Body.String(), "\"done\":1")
	})

	t.Run("Wrong Answer Count", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/lessons/srp/quiz", map[string]any{
			"reader":  "ana",
			"answers": []int{1},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing Reader", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/lessons/srp/quiz", map[string]any{
			"answers": []int{1, 0},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown Lesson", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/lessons/nope/quiz", map[string]any{
			"reader":  "ana",
			"answers": []int{0},
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCompleteLesson(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("Quiz-less Lesson", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/progress/ana/complete", map[string]any{
			"lesson_id": "intro",
		})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Lesson With Quiz Conflicts", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/progress/ana/complete", map[string]any{
			"lesson_id": "srp",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Missing Body", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/progress/ana/complete", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResetProgress(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/progress/ana/complete", map[string]any{"lesson_id": "intro"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, "/progress/ana", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	progress := doJSON(t, handler, http.MethodGet, "/progress/ana", nil)
	assert.Contains(t, progress.Body.String(), "\"done\":0")
}

func TestCORSPreflight(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodOptions, "/lessons", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
