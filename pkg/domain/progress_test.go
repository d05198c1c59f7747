package domain

import (
	"testing"
	"time"
)

func TestProgress_MarkCompletedIsIdempotent(t *testing.T) {
	p := NewProgress("ana")
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	p.MarkCompleted("srp", nil, first)
	p.MarkCompleted("srp", nil, second)

	if len(p.Completions) != 1 {
		t.Fatalf("expected 1 completion, got %d", len(p.Completions))
	}
	if got := p.Completions["srp"].CompletedAt; !got.Equal(first) {
		t.Errorf("original timestamp must survive recompletion, got %v", got)
	}
	if !p.UpdatedAt.Equal(second) {
		t.Errorf("UpdatedAt should track the latest mutation, got %v", p.UpdatedAt)
	}
}

func TestProgress_RecompletionAdoptsNewScore(t *testing.T) {
	p := NewProgress("ana")
	now := time.Now()

	p.MarkCompleted("ocp", &Score{Correct: 1, Total: 2}, now)
	p.MarkCompleted("ocp", &Score{Correct: 2, Total: 2, Passed: true}, now.Add(time.Minute))

	got := p.Completions["ocp"].Score
	if got == nil || !got.Passed {
		t.Fatalf("expected retake score to replace the old one, got %+v", got)
	}
}

func TestProgress_Percent(t *testing.T) {
	p := NewProgress("ana")
	if p.Percent(5) != 0 {
		t.Error("empty progress should be 0%")
	}

	now := time.Now()
	p.MarkCompleted("srp", nil, now)
	p.MarkCompleted("ocp", nil, now)

	if got := p.Percent(5); got != 40 {
		t.Errorf("got %d%%, want 40%%", got)
	}
	if got := p.Percent(0); got != 0 {
		t.Errorf("zero total must not divide, got %d", got)
	}
}

func TestProgress_Reset(t *testing.T) {
	p := NewProgress("ana")
	p.MarkCompleted("srp", nil, time.Now())
	p.Reset()

	if len(p.Completions) != 0 || !p.StartedAt.IsZero() {
		t.Error("reset must forget completions and start time")
	}
	if p.Reader != "ana" {
		t.Error("reset must keep the reader identity")
	}
}
