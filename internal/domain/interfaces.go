package domain

import (
	"context"
)

// SymptomAnalyzer is the entry point consumed by the HTTP and MCP surfaces.
type SymptomAnalyzer interface {
	RunAnalysis(ctx context.Context, symptoms string) AnalysisResult
	ApplyDemographicContext(result AnalysisResult, demographics Demographics) AnalysisResult
	ShouldShowFollowUp(level ConfidenceLevel, isFollowUp bool) bool
	FollowUpQuestions(disease Disease, maxQuestions int) []FollowUpQuestion
	RunFollowUp(ctx context.Context, req FollowUpRequest) (FollowUpOutcome, error)
	SelectPrediction(result AnalysisResult, proposed Disease) Disease
	Specialist(disease Disease) string
	Profiles() []DiseaseProfile
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	GetEngineConfig() *EngineConfig
	GetLoggingConfig() *LoggingConfig
	Reload() error
	Validate() error
	IsProduction() bool
	IsDevelopment() bool
}
