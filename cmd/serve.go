/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zacharylandes/fizzbit-sub000/internal/deck"
	"github.com/zacharylandes/fizzbit-sub000/internal/server"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

var (
	servePort    int
	serveOrigins []string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP API",
	Long: `Run the HTTP API so a web or mobile client can generate, swipe, and
arrange ideas against the same store the CLI uses. The data file is watched
for external edits and reloaded automatically.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default from config)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "allow-origin", nil, "CORS origins to allow (repeatable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	port := servePort
	if port <= 0 {
		port = cfg.Server.Port
	}

	ideaStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = ideaStore.Close() }()

	// The API stays up without a provider; generation endpoints report 503.
	var gen deck.Generator
	if provider, err := getProvider(); err == nil {
		g := deck.NewLLMGenerator(provider, modelParams(false), templatesDir())
		g.Source = models.SourceText
		gen = g
	} else if !errors.Is(err, types.ErrNoProvider) {
		fmt.Fprintf(os.Stderr, "warning: LLM provider unavailable: %v\n", err)
	}

	tel := getTelemetry()
	defer func() { _ = tel.Close() }()

	srv, err := server.New(server.Options{
		Store:          ideaStore,
		Generator:      gen,
		Telemetry:      tel,
		Port:           port,
		BatchCount:     cfg.Deck.BatchCount,
		AllowedOrigins: serveOrigins,
	})
	if err != nil {
		return err
	}

	if err := srv.WatchDataFile(GetIdeaFilePath()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: data file watch disabled: %v\n", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, 1)
	srv.Start(&wg, errChan)
	fmt.Printf("fizzbit API listening on http://localhost:%d\n", port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		fmt.Println("\nshutting down...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	wg.Wait()
	return nil
}
