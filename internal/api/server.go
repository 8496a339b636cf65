// Package api exposes the triage engine over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/middleware"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	configManager domain.ConfigManager
	analyzer      domain.SymptomAnalyzer
	logger        *logrus.Logger
	router        *gin.Engine
	server        *http.Server
	startedAt     time.Time
}

// NewServer creates a new HTTP server instance
func NewServer(configManager domain.ConfigManager, analyzer domain.SymptomAnalyzer, logger *logrus.Logger) (*Server, error) {
	cfg := configManager.GetConfig()

	// Set Gin mode based on environment
	if configManager.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(middleware.CorrelationID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.AuditLogger(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, middleware.DefaultMaxTrackedClients)
		if err != nil {
			return nil, fmt.Errorf("failed to configure rate limiting: %w", err)
		}
		router.Use(middleware.RateLimit(limiter))
	}
	if cfg.Server.RequestTimeout > 0 {
		router.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	}

	server := &Server{
		configManager: configManager,
		analyzer:      analyzer,
		logger:        logger,
		router:        router,
		startedAt:     time.Now(),
	}

	// Setup routes
	server.setupRoutes()

	return server, nil
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/diseases", s.handleListDiseases)
		v1.POST("/analyze", s.handleAnalyze)
		v1.POST("/followup/questions", s.handleFollowUpQuestions)
		v1.POST("/followup", s.handleFollowUp)
	}

	s.router.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, domain.NewAPIError(domain.CodeRouteNotFound, "route not found"))
	})
}
