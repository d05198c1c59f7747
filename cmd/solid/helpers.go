package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid"
	"github.com/lsobral/solid/internal/adapters"
	"github.com/lsobral/solid/internal/presentation/tui"
	"github.com/lsobral/solid/pkg/adapters/markdown"
	redisstore "github.com/lsobral/solid/pkg/adapters/redis"
	"github.com/lsobral/solid/pkg/domain"
	"github.com/lsobral/solid/pkg/ports"
)

// buildCourse is the composition root for the CLI commands: it assembles a
// Course from the persistent flags (lesson directory, progress backend).
func buildCourse(cmd *cobra.Command) (*solid.Course, error) {
	var opts []solid.Option

	catalog, err := buildCatalog(cmd)
	if err != nil {
		return nil, err
	}
	if catalog != nil {
		opts = append(opts, solid.WithCatalog(catalog))
	}

	kind, _ := cmd.Flags().GetString("store")
	redisURL, _ := cmd.Flags().GetString("redis-url")
	store, err := storeFor(kind, redisURL)
	if err != nil {
		return nil, err
	}
	opts = append(opts, solid.WithStore(store))

	return solid.New(opts...)
}

// buildCatalog loads lessons from --dir, or returns nil so the Course falls
// back to the embedded set.
func buildCatalog(cmd *cobra.Command) (ports.Catalog, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		return nil, nil
	}
	catalog, err := markdown.New(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("load lessons from %s: %w", dir, err)
	}
	return catalog, nil
}

// storeFor maps a backend name to a ProgressStore.
func storeFor(kind, redisURL string) (ports.ProgressStore, error) {
	switch kind {
	case "memory":
		return adapters.NewMemoryStore(), nil
	case "file", "":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		return adapters.NewFileStore(filepath.Join(home, ".solid", "progress")), nil
	case "redis":
		return redisstore.New(redisURL, "", 0), nil
	default:
		return nil, fmt.Errorf("unknown store %q (want memory, file or redis)", kind)
	}
}

// readerName resolves who progress is recorded for: the --reader flag,
// falling back to $USER.
func readerName(cmd *cobra.Command) string {
	reader, _ := cmd.Flags().GetString("reader")
	if reader != "" {
		return reader
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "reader"
}

// printLesson renders a lesson body to the terminal.
func printLesson(lesson domain.Lesson) {
	renderer := tui.NewRenderer()
	out, err := renderer.Render(string(lesson.Content))
	if err != nil {
		// Rendering is cosmetic; the text still has to reach the reader.
		out = string(lesson.Content)
	}
	fmt.Print(out)
}
