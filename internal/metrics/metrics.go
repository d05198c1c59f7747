// Package metrics holds the Prometheus collectors for the lesson server.
// Collectors are registered on the default registry once at package init;
// the HTTP adapter exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LessonReads counts lesson fetches per lesson, across every surface.
	LessonReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solid_lesson_reads_total",
			Help: "Total number of lesson reads",
		},
		[]string{"lesson_id", "surface"},
	)

	// LessonCompletions counts completion events per lesson.
	LessonCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solid_lesson_completions_total",
			Help: "Total number of lesson completions",
		},
		[]string{"lesson_id"},
	)

	// QuizSubmissions counts graded quizzes per lesson and outcome.
	QuizSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solid_quiz_submissions_total",
			Help: "Total number of quiz submissions",
		},
		[]string{"lesson_id", "result"},
	)
)

// QuizResult converts a pass/fail boolean into the metric label value.
func QuizResult(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}
