// Package mcp exposes the triage engine as Model Context Protocol tools.
// The lite server runs over stdio and needs nothing beyond the process.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	litecfg "github.com/UtsavYadav1/WellSure/internal/config"
	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
	"github.com/UtsavYadav1/WellSure/internal/logging"
	"github.com/UtsavYadav1/WellSure/internal/service"
)

// Tool names
const (
	ToolAnalyzeSymptoms   = "analyze_symptoms"
	ToolApplyDemographics = "apply_demographics"
	ToolFollowUpQuestions = "get_followup_questions"
	ToolSubmitFollowUp    = "submit_followup_answers"
	ToolGetSpecialist     = "get_specialist"
)

// LiteServer is a lightweight MCP server around a SymptomAnalyzer.
type LiteServer struct {
	config    *litecfg.LiteConfig
	mcpServer *mcp.Server
	analyzer  domain.SymptomAnalyzer
	logger    *logrus.Logger
	toolNames []string
}

// LiteServerOption is a functional option for LiteServer.
type LiteServerOption func(*LiteServer) error

// WithLogger sets a custom logger.
func WithLogger(logger *logrus.Logger) LiteServerOption {
	return func(s *LiteServer) error {
		s.logger = logger
		return nil
	}
}

// WithAnalyzer replaces the analyzer built from configuration.
func WithAnalyzer(analyzer domain.SymptomAnalyzer) LiteServerOption {
	return func(s *LiteServer) error {
		s.analyzer = analyzer
		return nil
	}
}

// NewLiteServer creates a new lightweight MCP server instance.
func NewLiteServer(cfg *litecfg.LiteConfig, opts ...LiteServerOption) (*LiteServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	server := &LiteServer{config: cfg}

	// Apply options
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.logger == nil {
		logger, err := logging.NewLogger(cfg.LoggingConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		server.logger = logger
	}

	if server.analyzer == nil {
		analyzer, err := newAnalyzer(server.logger, cfg.EngineConfig())
		if err != nil {
			return nil, err
		}
		server.analyzer = analyzer
	}

	serverInfo := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}
	server.mcpServer = mcp.NewServer(serverInfo, nil)

	server.registerMCPTools()

	server.logger.WithField("tool_count", len(server.toolNames)).Info("Lite server initialized successfully")
	return server, nil
}

func newAnalyzer(logger *logrus.Logger, cfg domain.EngineConfig) (*service.Analyzer, error) {
	opts := []service.AnalyzerOption{service.WithMaxFollowUpQuestions(cfg.MaxFollowUpQuestions)}
	if cfg.CacheEnabled {
		cache, err := service.NewAnalysisCache(cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create analysis cache: %w", err)
		}
		opts = append(opts, service.WithCache(cache))
	}
	return service.NewAnalyzer(logger, lexicon.Default(), opts...), nil
}

// registerMCPTools registers tools with the MCP SDK.
func (s *LiteServer) registerMCPTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolAnalyzeSymptoms,
		Description: "Analyze free-text symptoms and return the most likely condition, confidence, specialist routing and clarification questions. Red flag symptoms always return an emergency.",
	}, s.handleAnalyzeSymptoms)
	s.toolNames = append(s.toolNames, ToolAnalyzeSymptoms)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolApplyDemographics,
		Description: "Adjust an analysis confidence using patient age and gender. Emergencies and general physician fallbacks are never adjusted.",
	}, s.handleApplyDemographics)
	s.toolNames = append(s.toolNames, ToolApplyDemographics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolFollowUpQuestions,
		Description: "List yes/no clarification questions for a disease when confidence is not HIGH.",
	}, s.handleFollowUpQuestions)
	s.toolNames = append(s.toolNames, ToolFollowUpQuestions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolSubmitFollowUp,
		Description: "Re-analyze symptoms with answers to clarification questions. One round raises LOW confidence at most to MEDIUM.",
	}, s.handleSubmitFollowUp)
	s.toolNames = append(s.toolNames, ToolSubmitFollowUp)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolGetSpecialist,
		Description: "Return the specialist a disease is routed to.",
	}, s.handleGetSpecialist)
	s.toolNames = append(s.toolNames, ToolGetSpecialist)

	for _, name := range s.toolNames {
		s.logger.WithField("tool_name", name).Debug("Registered MCP tool")
	}
}

// ToolNames lists the registered tools in registration order.
func (s *LiteServer) ToolNames() []string {
	return append([]string(nil), s.toolNames...)
}

// Start serves MCP over stdio until ctx is cancelled or the client disconnects.
func (s *LiteServer) Start(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// Run serves MCP over the given transport.
func (s *LiteServer) Run(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("Starting WellSure MCP Server (Lite)...")

	if err := s.mcpServer.Run(ctx, transport); err != nil && ctx.Err() == nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	s.logger.Info("WellSure MCP Server (Lite) stopped")
	return nil
}
