package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid/internal/presentation/tui"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your progress through the course",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := buildCourse(cmd)
		if err != nil {
			fmt.Printf("Error initializing course: %v\n", err)
			os.Exit(1)
		}

		ctx := cmd.Context()
		reader := readerName(cmd)

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			if err := c.ResetProgress(ctx, reader); err != nil {
				fmt.Printf("Error resetting progress: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Progress for %q forgotten.\n", reader)
			return
		}

		summary, err := c.Summary(ctx, reader)
		if err != nil {
			fmt.Printf("Error loading progress: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Progress for %s\n\n", reader)
		fmt.Print(tui.FormatSummary(summary))
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().Bool("reset", false, "Forget all recorded progress for the reader")
}
