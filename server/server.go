// Package server exposes the max-flow solver over HTTP.
//
//	POST /v1/maxflow?source=0&sink=3&trace=true   body: edge-list text
//	GET  /healthz
//
// Responses are JSON. Every request gets a ULID request ID, returned in the
// X-Request-Id header and in the body of /v1/maxflow responses.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/netflow/network"
)

// DefaultMaxBodyBytes bounds request bodies when Options leaves it unset.
const DefaultMaxBodyBytes int64 = 8 << 20

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Backend      network.Backend
	Policy       network.DuplicatePolicy
	MaxBodyBytes int64
	MaxNodes     int // 0 leaves only the network ceilings
	Logger       zerolog.Logger
}

// Server routes HTTP requests to the solver.
type Server struct {
	opts   Options
	log    zerolog.Logger
	router chi.Router
}

// New builds a Server and its routes.
func New(opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{opts: opts, log: opts.Logger}

	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	mux.Use(s.requestID)
	mux.Use(s.accessLog)
	mux.Get("/healthz", s.healthz)
	mux.Post("/v1/maxflow", s.maxFlow)
	s.router = mux

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
