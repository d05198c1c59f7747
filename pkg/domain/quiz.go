package domain

import "fmt"

// Question is a single multiple-choice question.
// Answer is the zero-based index into Options.
type Question struct {
	Prompt  string   `json:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Options []string `json:"options" yaml:"options" mapstructure:"options"`
	Answer  int      `json:"answer" yaml:"answer" mapstructure:"answer"`

	// Explanation is shown after grading, right or wrong.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty" mapstructure:"explanation"`
}

// Quiz is the comprehension check closing a lesson.
type Quiz struct {
	Questions []Question `json:"questions" yaml:"questions" mapstructure:"questions"`
}

// Score is the result of grading a quiz submission.
type Score struct {
	Correct int  `json:"correct"`
	Total   int  `json:"total"`
	Passed  bool `json:"passed"`
}

// Grade scores a submission against the quiz. The submission must carry one
// selected option index per question, in question order. Passing requires
// every answer to be correct; quizzes here are two or three questions long,
// so partial credit would defeat their purpose.
func (q Quiz) Grade(answers []int) (Score, error) {
	if len(answers) != len(q.Questions) {
		return Score{}, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCount, len(answers), len(q.Questions))
	}

	score := Score{Total: len(q.Questions)}
	for i, question := range q.Questions {
		if answers[i] == question.Answer {
			score.Correct++
		}
	}
	score.Passed = score.Correct == score.Total
	return score, nil
}
