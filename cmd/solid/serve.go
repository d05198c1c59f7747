package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lsobral/solid"
	httpAdapter "github.com/lsobral/solid/internal/adapters/http"
	"github.com/lsobral/solid/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the course engine in server mode, exposing the lessons and progress as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := serverConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}

		course, err := buildServerCourse(cmd, cfg)
		if err != nil {
			fmt.Printf("Error initializing course: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(course)

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Solid Server on %s\n", srv.Addr)
			fmt.Printf("Progress backend: %s\n", cfg.Store)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Solid Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}

// serverConfig merges the environment with the command line; flags that were
// set explicitly win. The port flag is left to each command, since serve and
// mcp type it differently.
func serverConfig(cmd *cobra.Command) (config.Server, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Server{}, err
	}

	if cmd.Flags().Changed("store") {
		cfg.Store, _ = cmd.Flags().GetString("store")
	}
	if cmd.Flags().Changed("redis-url") {
		cfg.RedisURL, _ = cmd.Flags().GetString("redis-url")
	}
	return cfg, nil
}

// buildServerCourse assembles a Course for the server commands from the
// merged configuration.
func buildServerCourse(cmd *cobra.Command, cfg config.Server) (*solid.Course, error) {
	var opts []solid.Option

	catalog, err := buildCatalog(cmd)
	if err != nil {
		return nil, err
	}
	if catalog != nil {
		opts = append(opts, solid.WithCatalog(catalog))
	}

	if cfg.Store == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("store is redis but no redis address is configured")
	}
	store, err := storeFor(cfg.Store, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	opts = append(opts, solid.WithStore(store))

	return solid.New(opts...)
}
