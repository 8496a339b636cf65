package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/UtsavYadav1/WellSure/internal/api"
	"github.com/UtsavYadav1/WellSure/internal/config"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
	"github.com/UtsavYadav1/WellSure/internal/logging"
	"github.com/UtsavYadav1/WellSure/internal/service"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Knowledge base is validated once at startup; Default panics on broken tables
	lex := lexicon.Default()

	opts := []service.AnalyzerOption{service.WithMaxFollowUpQuestions(cfg.Engine.MaxFollowUpQuestions)}
	if cfg.Engine.CacheEnabled {
		cache, err := service.NewAnalysisCache(cfg.Engine.CacheSize)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create analysis cache")
		}
		opts = append(opts, service.WithCache(cache))
	}
	analyzer := service.NewAnalyzer(logger, lex, opts...)

	server, err := api.NewServer(configManager, analyzer, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create server")
	}

	logger.WithFields(logrus.Fields{
		"host":        cfg.Server.Host,
		"port":        cfg.Server.Port,
		"environment": cfg.Environment,
		"diseases":    len(lex.Profiles()),
	}).Info("Starting WellSure triage server")

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}
