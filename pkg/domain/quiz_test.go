package domain

import (
	"errors"
	"testing"
)

func sampleQuiz() Quiz {
	return Quiz{Questions: []Question{
		{Prompt: "Pick A", Options: []string{"A", "B"}, Answer: 0},
		{Prompt: "Pick C", Options: []string{"B", "C"}, Answer: 1},
	}}
}

func TestQuiz_Grade(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    Score
		err     bool
	}{
		{name: "All correct", answers: []int{0, 1}, want: Score{Correct: 2, Total: 2, Passed: true}},
		{name: "Partial", answers: []int{0, 0}, want: Score{Correct: 1, Total: 2, Passed: false}},
		{name: "All wrong", answers: []int{1, 0}, want: Score{Correct: 0, Total: 2, Passed: false}},
		{name: "Too few answers", answers: []int{0}, err: true},
		{name: "Too many answers", answers: []int{0, 1, 1}, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sampleQuiz().Grade(tt.answers)
			if tt.err {
				if !errors.Is(err, ErrAnswerCount) {
					t.Fatalf("expected ErrAnswerCount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
