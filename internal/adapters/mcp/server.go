// Package mcp exposes the course engine as a Model Context Protocol server,
// so AI agents can read the lessons, grade quizzes and track progress as
// first-class tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lsobral/solid/internal/course"
	"github.com/lsobral/solid/internal/metrics"
	"github.com/lsobral/solid/pkg/domain"
)

// Engine defines the course operations the MCP surface needs.
type Engine interface {
	Lesson(id string) (domain.Lesson, error)
	Lessons() ([]domain.Lesson, error)
	Complete(ctx context.Context, reader, lessonID string) error
	SubmitQuiz(ctx context.Context, reader, lessonID string, answers []int) (domain.Score, error)
	Summary(ctx context.Context, reader string) (course.Summary, error)
}

// Server wraps the course engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("solid-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_lessons
	s.mcpServer.AddTool(mcp.NewTool("list_lessons",
		mcp.WithDescription("List every lesson of the SOLID course in order, with IDs, titles and summaries."),
	), s.handleListLessons)

	// TOOL: read_lesson
	s.mcpServer.AddTool(mcp.NewTool("read_lesson",
		mcp.WithDescription("Read the full Markdown body of a lesson."),
		mcp.WithString("lesson_id", mcp.Required(), mcp.Description("Lesson ID, e.g. 'srp' or 'intro'")),
	), s.handleReadLesson)

	// TOOL: grade_quiz
	s.mcpServer.AddTool(mcp.NewTool("grade_quiz",
		mcp.WithDescription("Submit quiz answers for a lesson. A passing score completes the lesson for the reader."),
		mcp.WithString("lesson_id", mcp.Required(), mcp.Description("Lesson ID")),
		mcp.WithString("reader", mcp.Required(), mcp.Description("Reader identity to record the score under")),
		mcp.WithString("answers", mcp.Required(), mcp.Description("JSON array of selected option indexes, one per question")),
	), s.handleGradeQuiz)

	// TOOL: complete_lesson
	s.mcpServer.AddTool(mcp.NewTool("complete_lesson",
		mcp.WithDescription("Mark a quiz-less lesson as completed for the reader."),
		mcp.WithString("lesson_id", mcp.Required(), mcp.Description("Lesson ID")),
		mcp.WithString("reader", mcp.Required(), mcp.Description("Reader identity")),
	), s.handleCompleteLesson)

	// TOOL: get_progress
	s.mcpServer.AddTool(mcp.NewTool("get_progress",
		mcp.WithDescription("Get the reader's course summary: which lessons are done and the quiz scores."),
		mcp.WithString("reader", mcp.Required(), mcp.Description("Reader identity")),
	), s.handleGetProgress)
}

func (s *Server) registerResources() {
	lessons, err := s.engine.Lessons()
	if err != nil {
		slog.Error("MCP: failed to list lessons for resources", "error", err)
		return
	}

	// EXPOSE: solid://lessons/{id}
	for _, lesson := range lessons {
		uri := "solid://lessons/" + lesson.ID
		content := string(lesson.Content)

		s.mcpServer.AddResource(mcp.NewResource(uri, lesson.Title,
			mcp.WithMIMEType("text/markdown"),
		), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     content,
				},
			}, nil
		})
	}
}

func (s *Server) handleListLessons(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lessons, err := s.engine.Lessons()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}

	type row struct {
		ID        string `json:"id"`
		Principle string `json:"principle,omitempty"`
		Title     string `json:"title"`
		Summary   string `json:"summary,omitempty"`
		HasQuiz   bool   `json:"has_quiz"`
	}

	rows := make([]row, 0, len(lessons))
	for _, l := range lessons {
		rows = append(rows, row{
			ID:        l.ID,
			Principle: string(l.Principle),
			Title:     l.Title,
			Summary:   l.Summary,
			HasQuiz:   l.HasQuiz(),
		})
	}

	jsonBytes, _ := json.Marshal(rows)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleReadLesson(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lessonID := request.GetString("lesson_id", "")

	lesson, err := s.engine.Lesson(lessonID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("read failed: %v", err)), nil
	}

	metrics.LessonReads.WithLabelValues(lesson.ID, "mcp").Inc()
	return mcp.NewToolResultText(string(lesson.Content)), nil
}

func (s *Server) handleGradeQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lessonID := request.GetString("lesson_id", "")
	reader := request.GetString("reader", "")

	var answers []int
	if raw := request.GetString("answers", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("answers must be a JSON array of indexes: %v", err)), nil
		}
	}

	score, err := s.engine.SubmitQuiz(ctx, reader, lessonID, answers)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("grade failed: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(score)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleCompleteLesson(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lessonID := request.GetString("lesson_id", "")
	reader := request.GetString("reader", "")

	if err := s.engine.Complete(ctx, reader, lessonID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("complete failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("lesson %q completed for %q", lessonID, reader)), nil
}

func (s *Server) handleGetProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reader := request.GetString("reader", "")

	summary, err := s.engine.Summary(ctx, reader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("progress failed: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(summary)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
