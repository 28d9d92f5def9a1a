// Package server exposes solver sessions over HTTP.
//
// Routes:
//   - GET    /health
//   - GET    /decompose/{syllable}
//   - POST   /derive                   {"truth", "guess"}
//   - POST   /solve                    {"answer"}
//   - POST   /sessions
//   - GET    /sessions/{id}
//   - GET    /sessions/{id}/suggest    ?top=N
//   - GET    /sessions/{id}/candidates
//   - POST   /sessions/{id}/feedback   {"guess", "first", "second"} or {"jamo"}
//   - POST   /sessions/{id}/ban        {"word"}
//   - POST   /sessions/{id}/reset
//   - DELETE /sessions/{id}
//
// Hint names are the six Korean tokens only.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Jaesu26/pairrot-solver/internal/solver"
	"github.com/Jaesu26/pairrot-solver/internal/vocab"
)

// Options configures a Server.
type Options struct {
	// RequestTimeout bounds handler time, scoring included. 0 disables it.
	RequestTimeout time.Duration
	// Sessions defaults to an unbounded in-memory store.
	Sessions SessionStore
	Logger   zerolog.Logger
}

// Server bundles the router, the shared vocabulary and live sessions.
type Server struct {
	r        *chi.Mux
	vocab    vocab.Vocabulary
	cfg      solver.Config
	sessions SessionStore
	log      zerolog.Logger
}

// New validates cfg, installs middleware and registers routes.
func New(v vocab.Vocabulary, cfg solver.Config, opts Options) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Sessions == nil {
		opts.Sessions = NewMemoryStore(0)
	}
	s := &Server{
		r:        chi.NewRouter(),
		vocab:    v,
		cfg:      cfg,
		sessions: opts.Sessions,
		log:      opts.Logger,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.accessLog)
	s.r.Use(chimw.Recoverer)
	if opts.RequestTimeout > 0 {
		s.r.Use(chimw.Timeout(opts.RequestTimeout))
	}
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.sessions.Len()})
	})
	s.r.Get("/decompose/{syllable}", s.handleDecompose)
	s.r.Post("/derive", s.handleDerive)
	s.r.Post("/solve", s.handleSolve)

	s.r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleNewSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Get("/suggest", s.handleSuggest)
			r.Get("/candidates", s.handleCandidates)
			r.Post("/feedback", s.handleFeedback)
			r.Post("/ban", s.handleBan)
			r.Post("/reset", s.handleReset)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method_not_allowed", Message: r.Method})
	})

	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down within
// shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Debug().
				Str("request_id", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
