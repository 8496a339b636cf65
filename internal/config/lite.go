// Package config provides configuration management for the triage servers.
// This file contains the lightweight configuration for the stdio MCP server.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// LiteConfig is a simplified configuration for standalone operation.
// It is read from WELLSURE_* environment variables only and never touches
// stdout, which belongs to the MCP transport.
type LiteConfig struct {
	// Server identity reported during MCP initialization
	ServerName    string
	ServerVersion string

	// Engine settings
	CacheEnabled         bool
	CacheMaxItems        int
	MaxFollowUpQuestions int
	MaxSymptomBytes      int

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
	LogFile   string // empty logs to stderr
}

// DefaultLiteConfig returns a configuration with sensible defaults.
func DefaultLiteConfig() *LiteConfig {
	return &LiteConfig{
		ServerName:           "wellsure-triage",
		ServerVersion:        "1.0.0",
		CacheEnabled:         true,
		CacheMaxItems:        512,
		MaxFollowUpQuestions: 4,
		MaxSymptomBytes:      4096,
		LogLevel:             "info",
		LogFormat:            "json",
	}
}

// LoadLiteConfig loads configuration from environment variables.
// Unparseable or out-of-range values fall back to defaults.
func LoadLiteConfig() *LiteConfig {
	cfg := DefaultLiteConfig()

	if v := os.Getenv("WELLSURE_SERVER_NAME"); v != "" {
		cfg.ServerName = v
	}
	if v := os.Getenv("WELLSURE_SERVER_VERSION"); v != "" {
		cfg.ServerVersion = v
	}

	// Engine
	if v := os.Getenv("WELLSURE_CACHE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CacheEnabled = b
		}
	}
	if v := os.Getenv("WELLSURE_CACHE_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheMaxItems = n
		}
	}
	if v := os.Getenv("WELLSURE_MAX_FOLLOWUP_QUESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxFollowUpQuestions = n
		}
	}
	if v := os.Getenv("WELLSURE_MAX_SYMPTOM_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSymptomBytes = n
		}
	}

	// Logging
	if v := os.Getenv("WELLSURE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("WELLSURE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	cfg.LogFile = os.Getenv("WELLSURE_LOG_FILE")

	return cfg
}

// Validate checks the logging settings, the only values LoadLiteConfig
// passes through unchecked.
func (c *LiteConfig) Validate() error {
	return validateLogging(c.LogLevel, c.LogFormat)
}

// LoggingConfig converts the lite settings into a logger configuration.
func (c *LiteConfig) LoggingConfig() domain.LoggingConfig {
	lc := domain.LoggingConfig{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Output: "stderr",
	}
	if c.LogFile != "" {
		lc.Output = "file"
		lc.Filename = c.LogFile
	}
	return lc
}

// EngineConfig converts the lite settings into an engine configuration.
func (c *LiteConfig) EngineConfig() domain.EngineConfig {
	return domain.EngineConfig{
		MaxFollowUpQuestions: c.MaxFollowUpQuestions,
		CacheEnabled:         c.CacheEnabled,
		CacheSize:            c.CacheMaxItems,
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
