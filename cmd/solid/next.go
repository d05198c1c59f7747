package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid/internal/course"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Read your next incomplete lesson",
	Long:  `Picks the first lesson you haven't finished yet, renders it, and records quiz-less lessons as read.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := buildCourse(cmd)
		if err != nil {
			fmt.Printf("Error initializing course: %v\n", err)
			os.Exit(1)
		}

		ctx := cmd.Context()
		reader := readerName(cmd)

		lesson, err := c.Next(ctx, reader)
		if errors.Is(err, course.ErrCourseComplete) {
			fmt.Println("Nothing left. You have finished the course!")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		printLesson(lesson)

		if lesson.HasQuiz() {
			fmt.Printf("\nFinish this lesson by passing its quiz: solid quiz %s\n", lesson.ID)
			return
		}

		fmt.Print("\nMark this lesson as done? [Y/n] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer == "n" || answer == "no" {
			return
		}

		if err := c.Complete(ctx, reader, lesson.ID); err != nil {
			fmt.Printf("Error recording completion: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Done. Next up: solid next\n")
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
