package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"wasteCollect/internal/api/handlers/http/address"
	"wasteCollect/internal/api/handlers/http/collection"
	"wasteCollect/internal/api/handlers/http/system"
	"wasteCollect/internal/api/handlers/http/waste"
	"wasteCollect/internal/config"
	"wasteCollect/internal/middleware"
	"wasteCollect/internal/service"
)

type Server struct {
	logger  *slog.Logger
	handler http.Handler
	cfg     config.Config
}

type Handlers struct {
	Collection *collection.Handler
	Waste      *waste.Handler
	Address    *address.Handler
	System     *system.Handler
}

// NewServer builds the HTTP surface. ctx bounds the rate limiter sweepers;
// checks are the dependencies reported by /ready.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Pinger) *Server {
	handlers := Handlers{
		Collection: collection.NewHandler(logger, svc.Workflow, svc.Collections),
		Waste:      waste.NewHandler(logger, svc.Wastes, svc.Proximity),
		Address:    address.NewHandler(logger, svc.Addresses),
		System:     system.NewHandler(logger, checks),
	}

	r := InitRouter(ctx, cfg, handlers, logger)

	return &Server{
		logger:  logger,
		handler: WithCORS(cfg.CORS, r),
		cfg:     *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// request_id must be set before chimw.Logger runs
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	readLimit := middleware.Limit(ctx, cfg.RateLimit.PublicRPS, cfg.RateLimit.PublicBurst, 5*time.Minute, logger)
	writeLimit := middleware.Limit(ctx, cfg.RateLimit.WriteRPS, cfg.RateLimit.WriteBurst, 10*time.Minute, logger)

	r.Route("/api/v1", func(api chi.Router) {
		// SYSTEM
		api.Get("/health", h.System.SystemHealth)
		api.Get("/ready", h.System.SystemReady)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.APIKeyMiddleware(cfg.APIKey, logger))
			pr.Use(middleware.RequireUser(logger))
			pr.Use(readLimit)

			pr.Route("/collections", func(cr chi.Router) {
				cr.With(writeLimit).Post("/", h.Collection.Sign)
				cr.Get("/my", h.Collection.ListMine)
				cr.With(writeLimit).Patch("/{id}/status", h.Collection.UpdateStatus)
			})

			pr.Route("/wastes", func(wr chi.Router) {
				wr.With(writeLimit).Post("/", h.Waste.Create)
				wr.Get("/available", h.Waste.ListAvailable)
				wr.Get("/nearby", h.Waste.Nearby)
				wr.Get("/my", h.Waste.ListMine)
				wr.Get("/{id}", h.Waste.Get)
				wr.With(writeLimit).Patch("/{id}", h.Waste.Update)
				wr.With(writeLimit).Delete("/{id}", h.Waste.Cancel)
			})

			pr.Route("/addresses", func(ar chi.Router) {
				ar.With(writeLimit).Post("/", h.Address.Create)
				ar.Get("/my", h.Address.ListMine)
				ar.Get("/{id}", h.Address.Get)
				ar.With(writeLimit).Patch("/{id}", h.Address.Update)
			})
		})
	})

	return r
}

func WithCORS(cfg config.CORSConfig, next http.Handler) http.Handler {
	co := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderAPIKey, middleware.HeaderUserID},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         300,
	})
	return co.Handler(next)
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
