package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. WELLSURE_SERVER_PORT.
const EnvPrefix = "WELLSURE"

var defaultConfigPaths = []string{".", "./config", "/etc/wellsure/"}

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	paths  []string
	config *domain.Config
}

// NewManager creates a new configuration manager reading config.yaml from
// the default search paths.
func NewManager() (*Manager, error) {
	return NewManagerWithPaths(defaultConfigPaths...)
}

// NewManagerWithPaths creates a configuration manager that searches only the
// given directories for config.yaml.
func NewManagerWithPaths(paths ...string) (*Manager, error) {
	m := &Manager{paths: paths}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are not an error; variables already set are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if fileExists(f) {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("error loading env file: %w", err)
	}
	return nil
}

// loadConfig loads configuration from file, environment and defaults
func (m *Manager) loadConfig() error {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range m.paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; defaults and environment cover everything
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.request_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.max_symptom_bytes", 4096)

	// Engine defaults
	v.SetDefault("engine.max_followup_questions", 4)
	v.SetDefault("engine.cache_enabled", true)
	v.SetDefault("engine.cache_size", 1024)

	// Rate limiting defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 5.0)
	v.SetDefault("rate_limit.burst", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.filename", "")

	// MCP defaults
	v.SetDefault("mcp.server_name", "wellsure-triage")
	v.SetDefault("mcp.server_version", "1.0.0")
	v.SetDefault("mcp.transport_type", "stdio")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetEngineConfig returns analysis engine configuration
func (m *Manager) GetEngineConfig() *domain.EngineConfig {
	return &m.config.Engine
}

// GetRateLimitConfig returns rate limiting configuration
func (m *Manager) GetRateLimitConfig() *domain.RateLimitConfig {
	return &m.config.RateLimit
}

// GetLoggingConfig returns logging configuration
func (m *Manager) GetLoggingConfig() *domain.LoggingConfig {
	return &m.config.Logging
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	// Validate server configuration
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server read and write timeouts must be positive")
	}
	if config.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server request timeout must be positive")
	}
	if config.Server.MaxSymptomBytes <= 0 {
		return fmt.Errorf("invalid max symptom bytes: %d", config.Server.MaxSymptomBytes)
	}

	// Validate engine configuration
	if config.Engine.MaxFollowUpQuestions <= 0 {
		return fmt.Errorf("invalid max follow-up questions: %d", config.Engine.MaxFollowUpQuestions)
	}
	if config.Engine.CacheEnabled && config.Engine.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive when caching is enabled")
	}

	// Validate rate limiting
	if config.RateLimit.Enabled {
		if config.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("invalid requests per second: %v", config.RateLimit.RequestsPerSecond)
		}
		if config.RateLimit.Burst <= 0 {
			return fmt.Errorf("invalid rate limit burst: %d", config.RateLimit.Burst)
		}
	}

	// Validate logging configuration
	if err := validateLogging(config.Logging.Level, config.Logging.Format); err != nil {
		return err
	}
	if strings.ToLower(config.Logging.Output) == "file" && config.Logging.Filename == "" {
		return fmt.Errorf("logging filename is required for file output")
	}

	// Validate MCP configuration
	if config.MCP.TransportType != "stdio" {
		return fmt.Errorf("unsupported MCP transport: %s", config.MCP.TransportType)
	}

	return nil
}

func validateLogging(level, format string) error {
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(level)] {
		return fmt.Errorf("invalid log level: %s", level)
	}
	switch strings.ToLower(format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}
	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(m.config.Environment) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(m.config.Environment)
	return env == "development" || env == "dev" || env == ""
}

var _ domain.ConfigManager = (*Manager)(nil)
