package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Config configures a standalone Server.
type Config struct {
	Addr           string
	Path           string
	File           string
	ShowUnreleased bool
	// Watch caches the parsed file and reloads it when it changes.
	Watch bool
}

// Server serves one changelog file over HTTP.
type Server struct {
	cfg    Config
	logger *log.Logger
	doc    *Document
	router chi.Router
}

// New builds the router for cfg.
func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		doc:    NewDocument(cfg.File, cfg.Watch),
		router: chi.NewRouter(),
	}

	s.router.Use(RequestID)
	s.router.Use(Logger(logger))
	s.router.Use(middleware.Recoverer)
	NewHandler(s.doc, cfg.ShowUnreleased, logger).Mount(s.router, cfg.Path)

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully. With
// Watch set, a file watcher runs alongside the HTTP server.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	if s.cfg.Watch {
		watcher, err := NewWatcher(s.cfg.File, s.doc.Invalidate, s.logger)
		if err != nil {
			ln.Close()
			return err
		}
		g.Go(func() error {
			return watcher.Run(ctx)
		})
	}

	g.Go(func() error {
		s.logger.Info("serving changelog", "addr", ln.Addr().String(), "path", s.cfg.Path, "file", s.cfg.File)
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
