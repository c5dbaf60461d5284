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
	"github.com/go-chi/cors"

	"github.com/01wneo/RollingText/pkg/cache"
	"github.com/01wneo/RollingText/pkg/config"
	"github.com/01wneo/RollingText/pkg/runs"
)

const (
	// MaxFrames bounds the frames a single request may render.
	MaxFrames = 1000

	maxBodyBytes    = 64 << 10
	artifactTTL     = 24 * time.Hour
	shutdownTimeout = 5 * time.Second
)

// Server serves the rolling text HTTP API.
type Server struct {
	cfg    config.Config
	cache  cache.Cache
	keyer  cache.Keyer
	runs   runs.Store
	logger *log.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithCache stores rendered diagrams in c under keys built by k.
func WithCache(c cache.Cache, k cache.Keyer) Option {
	return func(s *Server) { s.cache = c; s.keyer = k }
}

// WithRunStore records every frames run in st.
func WithRunStore(st runs.Store) Option { return func(s *Server) { s.runs = st } }

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// New creates a server whose requests start from cfg.
func New(cfg config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		cache:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		runs:   runs.NewMemoryStore(0),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler, building the router on first use.
func (s *Server) Handler() http.Handler {
	if s.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Recoverer)
		r.Use(observe)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"X-Run-Id"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", s.health)
		r.Route("/v1", func(rr chi.Router) {
			rr.Get("/resolve", s.resolve)
			rr.Post("/frames", s.frames)
			rr.Get("/graph", s.graph)
			rr.Get("/runs/{id}", s.run)
		})

		s.router = r
	}
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}
