package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <lesson-id>",
	Short: "Take a lesson's quiz interactively",
	Long:  `Asks the lesson's questions one by one. Passing (every answer correct) completes the lesson.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runQuiz(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, lessonID string) error {
	c, err := buildCourse(cmd)
	if err != nil {
		return fmt.Errorf("initializing course: %w", err)
	}

	lesson, err := c.Lesson(lessonID)
	if err != nil {
		return err
	}
	if !lesson.HasQuiz() {
		return fmt.Errorf("lesson %q has no quiz", lessonID)
	}

	fmt.Printf("Quiz: %s (%d questions)\n\n", lesson.Title, len(lesson.Quiz.Questions))

	stdin := bufio.NewReader(os.Stdin)
	answers := make([]int, 0, len(lesson.Quiz.Questions))

	for i, q := range lesson.Quiz.Questions {
		fmt.Printf("%d. %s\n", i+1, q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("   %d) %s\n", j+1, opt)
		}
		answers = append(answers, askOption(stdin, len(q.Options)))
		fmt.Println()
	}

	score, err := c.SubmitQuiz(cmd.Context(), readerName(cmd), lessonID, answers)
	if err != nil {
		return err
	}

	if score.Passed {
		fmt.Printf("Passed! %d/%d correct. Lesson %q is done.\n", score.Correct, score.Total, lessonID)
	} else {
		fmt.Printf("%d/%d correct. Reread the lesson and try again: solid show %s\n", score.Correct, score.Total, lessonID)
	}
	return nil
}

// askOption prompts until the reader picks a valid 1-based option, and
// returns it 0-based.
func askOption(stdin *bufio.Reader, options int) int {
	for {
		fmt.Printf("> ")
		line, err := stdin.ReadString('\n')
		if err != nil {
			// Stdin closed; treat it as giving up on the question.
			return -1
		}
		pick, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && pick >= 1 && pick <= options {
			return pick - 1
		}
		fmt.Printf("Pick a number between 1 and %d.\n", options)
	}
}
