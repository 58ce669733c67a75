// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the converters and calculators as a local JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/pdiddy/calckit/pkg/types"
)

const shutdownTimeout = 5 * time.Second

// ThemeStore reads and writes the persisted theme flag.
type ThemeStore interface {
	Theme(ctx context.Context, fallback types.Theme) (types.Theme, error)
	SetTheme(ctx context.Context, t types.Theme) error
	Toggle(ctx context.Context, fallback types.Theme) (types.Theme, error)
}

// Server serves the calckit API.
type Server struct {
	cfg        types.Config
	themes     ThemeStore
	logger     *zap.Logger
	now        func() time.Time
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. cfg must already carry defaults.
func New(cfg types.Config, themes ThemeStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		themes: themes,
		logger: logger,
		now:    time.Now,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.Server.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/units", s.handleListUnits)
		r.Get("/units/{category}", s.handleUnitTable)
		r.Get("/convert", s.handleConvert)
		r.Post("/pair", s.handlePair)

		r.Route("/calc", func(r chi.Router) {
			r.Post("/age", s.handleAge)
			r.Post("/date", s.handleDateDiff)
			r.Post("/date-add", s.handleDateAdd)
			r.Post("/bmi", s.handleBMI)
			r.Post("/bmr", s.handleBMR)
			r.Post("/calories", s.handleCalories)
			r.Post("/loan", s.handleLoan)
			r.Post("/percentage", s.handlePercentage)
			r.Post("/trig", s.handleTrig)
		})

		r.Post("/subnet", s.handleSubnet)
		r.Post("/text", s.handleText)
		r.Post("/qr", s.handleQR)

		r.Get("/theme", s.handleGetTheme)
		r.Put("/theme", s.handleSetTheme)
		r.Post("/theme/toggle", s.handleToggleTheme)
	})

	return r
}

// requestLogger logs one line per request with its status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("calckit server listening", zap.String("addr", s.cfg.Server.Addr))
		errc <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
