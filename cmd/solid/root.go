package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "solid",
	Short: "Solid is an interactive field guide to the SOLID principles",
	Long: `Solid teaches the five SOLID design principles with Markdown lessons,
compilable Go examples and short quizzes, straight from your terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(logging.New(level))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory with lesson files (default: embedded course)")
	rootCmd.PersistentFlags().String("reader", "", "Reader identity (default: $USER)")
	rootCmd.PersistentFlags().String("store", "file", "Progress backend: memory, file or redis")
	rootCmd.PersistentFlags().String("redis-url", "localhost:6379", "Redis address (only for --store redis)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
