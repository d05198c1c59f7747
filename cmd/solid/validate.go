package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid/internal/validator"
	"github.com/lsobral/solid/lessons"
	"github.com/lsobral/solid/pkg/adapters/markdown"
	"github.com/lsobral/solid/pkg/ports"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a lesson catalog for editorial mistakes",
	Long:  `Loads the lessons from a directory (or the embedded course) and reports missing titles, duplicate ordering and broken quizzes.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var catalog ports.Catalog
	var err error

	switch {
	case len(args) > 0:
		catalog, err = markdown.New(os.DirFS(args[0]), ".")
	default:
		catalog, err = buildCatalog(cmd)
		if err == nil && catalog == nil {
			catalog, err = markdown.New(lessons.FS, ".")
		}
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	return validator.ValidateCatalog(catalog)
}
