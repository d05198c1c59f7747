package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid/pkg/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <lesson-id|principle>",
	Short: "Read a lesson in the terminal",
	Long:  `Renders the lesson's Markdown body with terminal styling. Use 'solid list' to see the available IDs.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		course, err := buildCourse(cmd)
		if err != nil {
			fmt.Printf("Error initializing course: %v\n", err)
			os.Exit(1)
		}

		lesson, err := course.Lesson(args[0])
		if err != nil {
			// Principle names resolve too, so `solid show lsp` works even
			// when the catalog uses different lesson IDs.
			if p, perr := domain.ParsePrinciple(args[0]); perr == nil {
				if lessons, lerr := course.Lessons(); lerr == nil {
					lesson, err = domain.FindByPrinciple(lessons, p)
				}
			}
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		printLesson(lesson)

		if lesson.HasQuiz() {
			fmt.Printf("\nThis lesson has a quiz. Take it with: solid quiz %s\n", lesson.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
