package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid/internal/presentation/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every lesson in course order",
	Run: func(cmd *cobra.Command, args []string) {
		course, err := buildCourse(cmd)
		if err != nil {
			fmt.Printf("Error initializing course: %v\n", err)
			os.Exit(1)
		}

		lessons, err := course.Lessons()
		if err != nil {
			fmt.Printf("Error loading lessons: %v\n", err)
			os.Exit(1)
		}

		tui.PrintBanner()
		for _, l := range lessons {
			letter := " "
			if l.Principle.Valid() {
				letter = l.Principle.Letter()
			}
			quiz := ""
			if l.HasQuiz() {
				quiz = "  (quiz)"
			}
			fmt.Printf("  %s  %-8s %s%s\n", letter, l.ID, l.Title, quiz)
		}
		fmt.Println()
		fmt.Println("Read a lesson with: solid show <id>")
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
