// Package server exposes the idea flow over HTTP so a web or mobile front end
// can drive generation, swiping, and the canvas against the same store the
// CLI uses.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zacharylandes/fizzbit-sub000/internal/deck"
	"github.com/zacharylandes/fizzbit-sub000/internal/telemetry"
	"github.com/zacharylandes/fizzbit-sub000/store"
)

// Server wires the store, the generator, and telemetry behind the HTTP API.
type Server struct {
	store     store.IdeaStore
	generator deck.Generator
	telemetry *telemetry.Client
	port      int
	origins   map[string]struct{}
	server    *http.Server
	watcher   *fsnotify.Watcher
}

// Options configures a Server.
type Options struct {
	Store     store.IdeaStore
	Generator deck.Generator
	Telemetry *telemetry.Client
	Port      int
	// BatchCount is the default card count for generate/explore requests.
	BatchCount int
	// AllowedOrigins whitelists CORS origins. Empty means same-origin only.
	AllowedOrigins []string
}

type serverDefaults struct {
	batchCount int
}

// New builds the server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if opts.Port <= 0 {
		return nil, fmt.Errorf("invalid port %d", opts.Port)
	}
	batchCount := opts.BatchCount
	if batchCount <= 0 {
		batchCount = 5
	}

	s := &Server{
		store:     opts.Store,
		generator: opts.Generator,
		telemetry: opts.Telemetry,
		port:      opts.Port,
		origins:   make(map[string]struct{}),
	}
	for _, o := range opts.AllowedOrigins {
		s.origins[o] = struct{}{}
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.registerRoutes(serverDefaults{batchCount: batchCount}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start runs the listener on its own goroutine.
func (s *Server) Start(wg *sync.WaitGroup, errChan chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()
}

// WatchDataFile reloads the store when the data file changes on disk, so edits
// made by a concurrent CLI invocation show up without restarting serve. Only
// the flat-file backend supports reloading.
func (s *Server) WatchDataFile(path string) error {
	reloader, ok := s.store.(interface{ Reload() error })
	if !ok {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create data file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}
	s.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := reloader.Reload(); err != nil {
					slog.Warn("data file reload failed", "path", path, "error", err)
				} else {
					slog.Debug("data file reloaded", "path", path)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("data file watcher error", "error", err)
			}
		}
	}()
	return nil
}

// Shutdown stops the listener and the watcher.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	return s.server.Shutdown(ctx)
}
