// Package http exposes the course engine as a stateless JSON API.
// The contract lives in api/openapi.yaml; the routes here are written by
// hand against chi and cross-checked against that contract in tests.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lsobral/solid/api"
	"github.com/lsobral/solid/internal/course"
	"github.com/lsobral/solid/internal/metrics"
	"github.com/lsobral/solid/pkg/domain"
)

// Engine defines the course operations the HTTP surface needs.
type Engine interface {
	Lesson(id string) (domain.Lesson, error)
	Lessons() ([]domain.Lesson, error)
	Complete(ctx context.Context, reader, lessonID string) error
	SubmitQuiz(ctx context.Context, reader, lessonID string, answers []int) (domain.Score, error)
	Summary(ctx context.Context, reader string) (course.Summary, error)
	ResetProgress(ctx context.Context, reader string) error
}

// Server routes HTTP requests to the engine.
type Server struct {
	engine Engine
}

// NewHandler creates the HTTP handler for the course engine.
func NewHandler(engine Engine) http.Handler {
	s := &Server{engine: engine}

	r := chi.NewRouter()

	r.Get("/healthz", s.Healthz)
	r.Get("/lessons", s.ListLessons)
	r.Get("/lessons/{id}", s.GetLesson)
	r.Get("/principles/{principle}", s.GetPrinciple)
	r.Post("/lessons/{id}/quiz", s.SubmitQuiz)
	r.Get("/progress/{reader}", s.GetProgress)
	r.Delete("/progress/{reader}", s.ResetProgress)
	r.Post("/progress/{reader}/complete", s.CompleteLesson)

	r.Handle("/metrics", promhttp.Handler())

	// Contract and Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListLessons handles GET /lessons.
func (s *Server) ListLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := s.engine.Lessons()
	if err != nil {
		http.Error(w, "Failed to load lessons", http.StatusInternalServerError)
		slog.Error("ListLessons failed", "error", err)
		return
	}

	out := make([]lessonSummary, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, toSummary(l))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetLesson handles GET /lessons/{id}.
func (s *Server) GetLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lesson, err := s.engine.Lesson(id)
	if err != nil {
		if errors.Is(err, domain.ErrLessonNotFound) {
			http.Error(w, "Lesson not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load lesson", http.StatusInternalServerError)
		slog.Error("GetLesson failed", "lesson", id, "error", err)
		return
	}

	metrics.LessonReads.WithLabelValues(lesson.ID, "http").Inc()

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(lesson.Content)
		return
	}

	writeJSON(w, http.StatusOK, toLessonBody(lesson))
}

// GetPrinciple handles GET /principles/{principle}. It resolves the lesson
// covering a principle without the caller knowing the lesson ID.
func (s *Server) GetPrinciple(w http.ResponseWriter, r *http.Request) {
	principle, err := domain.ParsePrinciple(chi.URLParam(r, "principle"))
	if err != nil {
		http.Error(w, "Unknown principle", http.StatusNotFound)
		return
	}

	lessons, err := s.engine.Lessons()
	if err != nil {
		http.Error(w, "Failed to load lessons", http.StatusInternalServerError)
		slog.Error("GetPrinciple failed", "principle", principle, "error", err)
		return
	}

	lesson, err := domain.FindByPrinciple(lessons, principle)
	if err != nil {
		http.Error(w, "No lesson covers this principle", http.StatusNotFound)
		return
	}

	metrics.LessonReads.WithLabelValues(lesson.ID, "http").Inc()
	writeJSON(w, http.StatusOK, toLessonBody(lesson))
}

// SubmitQuiz handles POST /lessons/{id}/quiz.
func (s *Server) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Reader  string `json:"reader"`
		Answers []int  `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Reader == "" {
		http.Error(w, "reader is required", http.StatusBadRequest)
		return
	}

	score, err := s.engine.SubmitQuiz(r.Context(), body.Reader, id, body.Answers)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLessonNotFound):
			http.Error(w, "Lesson not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrAnswerCount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to grade quiz", http.StatusInternalServerError)
			slog.Error("SubmitQuiz failed", "lesson", id, "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, score)
}

// GetProgress handles GET /progress/{reader}.
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	reader := chi.URLParam(r, "reader")

	summary, err := s.engine.Summary(r.Context(), reader)
	if err != nil {
		http.Error(w, "Failed to load progress", http.StatusInternalServerError)
		slog.Error("GetProgress failed", "reader", reader, "error", err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// ResetProgress handles DELETE /progress/{reader}.
func (s *Server) ResetProgress(w http.ResponseWriter, r *http.Request) {
	reader := chi.URLParam(r, "reader")

	if err := s.engine.ResetProgress(r.Context(), reader); err != nil {
		http.Error(w, "Failed to reset progress", http.StatusInternalServerError)
		slog.Error("ResetProgress failed", "reader", reader, "error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteLesson handles POST /progress/{reader}/complete.
func (s *Server) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	reader := chi.URLParam(r, "reader")

	var body struct {
		LessonID string `json:"lesson_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.LessonID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := s.engine.Complete(r.Context(), reader, body.LessonID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLessonNotFound):
			http.Error(w, "Lesson not found", http.StatusNotFound)
		case errors.Is(err, course.ErrQuizRequired):
			http.Error(w, "Lesson has a quiz; complete it by passing the quiz", http.StatusConflict)
		default:
			http.Error(w, "Failed to record completion", http.StatusInternalServerError)
			slog.Error("CompleteLesson failed", "reader", reader, "lesson", body.LessonID, "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Solid Course API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
