// Package main provides the stdio entry point for the WellSure MCP server.
// Logs go to stderr or a file; stdout carries the protocol.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UtsavYadav1/WellSure/internal/config"
	"github.com/UtsavYadav1/WellSure/internal/mcp"
)

func main() {
	log.SetOutput(os.Stderr)

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// Load lightweight configuration
	cfg := config.LoadLiteConfig()

	// Create lite MCP server
	server, err := mcp.NewLiteServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	// Start MCP server
	if err := server.Start(ctx); err != nil {
		log.Fatalf("MCP server failed: %v", err)
	}
}
