// Package http provides the HTTP server, routing and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardsHTTP "github.com/allisson/cardvault/internal/cards/http"
	"github.com/allisson/cardvault/internal/config"
	credentialsHTTP "github.com/allisson/cardvault/internal/credentials/http"
	"github.com/allisson/cardvault/internal/metrics"
)

// Server represents the main HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The database handle is used by the
// readiness endpoint; routes are registered separately via SetupRouter.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter wires middleware and registers all application routes.
//
// Reveal endpoints return decrypted plaintext and sit behind an additional
// per-IP rate limiter when enabled. The /metrics endpoint is intentionally
// NOT registered here; it is served by the separate MetricsServer.
func (s *Server) SetupRouter(
	cfg *config.Config,
	cardHandler *cardsHTTP.CardHandler,
	credentialHandler *credentialsHTTP.CredentialHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	revealMiddlewares := []gin.HandlerFunc{}
	if cfg.RevealRateLimitEnabled {
		revealMiddlewares = append(revealMiddlewares, RevealRateLimitMiddleware(
			cfg.RevealRateLimitRequestsPerSec,
			cfg.RevealRateLimitBurst,
			s.logger,
		))
	}

	v1 := router.Group("/v1")
	{
		cards := v1.Group("/cards")
		{
			cards.POST("", cardHandler.CreateHandler)
			cards.GET("", cardHandler.ListHandler)
			cards.PATCH("/:cardId", cardHandler.UpdateHandler)
			cards.DELETE("/:cardId", cardHandler.DeleteHandler)
			cards.GET("/:cardId/reveal", append(revealMiddlewares, cardHandler.RevealHandler)...)
		}

		credentials := v1.Group("/credentials")
		{
			credentials.POST("", credentialHandler.CreateHandler)
			credentials.GET("", credentialHandler.ListHandler)
			credentials.GET("/:credentialId/reveal", append(revealMiddlewares, credentialHandler.RevealHandler)...)
		}
	}

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic.
// The database is the only hard dependency; an unreachable database
// means requests would fail, so readiness returns 503.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.String("component", "database"), slog.Any("error", err))
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server using the configured router.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
