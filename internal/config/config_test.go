package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestManager_Defaults(t *testing.T) {
	m, err := NewManagerWithPaths(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	cfg := m.GetConfig()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, m.GetServerConfig().Port)
	assert.Equal(t, 15*time.Second, m.GetServerConfig().ReadTimeout)
	assert.Equal(t, 10*time.Second, m.GetServerConfig().RequestTimeout)
	assert.Equal(t, 4096, m.GetServerConfig().MaxSymptomBytes)
	assert.Equal(t, 4, m.GetEngineConfig().MaxFollowUpQuestions)
	assert.True(t, m.GetEngineConfig().CacheEnabled)
	assert.Equal(t, 5.0, m.GetRateLimitConfig().RequestsPerSecond)
	assert.Equal(t, "info", m.GetLoggingConfig().Level)
	assert.Equal(t, "stdio", cfg.MCP.TransportType)
	assert.True(t, m.IsDevelopment())
	assert.False(t, m.IsProduction())
}

func TestManager_ConfigFile(t *testing.T) {
	dir := writeConfigFile(t, `
environment: production
server:
  port: 9000
  request_timeout: 3s
engine:
  max_followup_questions: 2
  cache_size: 16
logging:
  level: debug
  format: text
`)

	m, err := NewManagerWithPaths(dir)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 9000, m.GetServerConfig().Port)
	assert.Equal(t, 3*time.Second, m.GetServerConfig().RequestTimeout)
	assert.Equal(t, 2, m.GetEngineConfig().MaxFollowUpQuestions)
	assert.Equal(t, 16, m.GetEngineConfig().CacheSize)
	assert.Equal(t, "text", m.GetLoggingConfig().Format)
	// untouched keys keep their defaults
	assert.Equal(t, "0.0.0.0", m.GetServerConfig().Host)
	assert.True(t, m.IsProduction())
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	dir := writeConfigFile(t, "server:\n  port: 9000\n")
	t.Setenv("WELLSURE_SERVER_PORT", "9191")
	t.Setenv("WELLSURE_RATE_LIMIT_BURST", "42")

	m, err := NewManagerWithPaths(dir)
	require.NoError(t, err)

	assert.Equal(t, 9191, m.GetServerConfig().Port)
	assert.Equal(t, 42, m.GetRateLimitConfig().Burst)
}

func TestManager_Reload(t *testing.T) {
	dir := writeConfigFile(t, "server:\n  port: 9000\n")
	m, err := NewManagerWithPaths(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 9001\n"), 0o600))
	require.NoError(t, m.Reload())
	assert.Equal(t, 9001, m.GetServerConfig().Port)
}

func TestManager_MalformedFile(t *testing.T) {
	dir := writeConfigFile(t, "server: [unclosed\n")
	_, err := NewManagerWithPaths(dir)
	assert.Error(t, err)
}

func TestManager_Validate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"zero request timeout", "server:\n  request_timeout: 0s\n"},
		{"zero symptom bytes", "server:\n  max_symptom_bytes: 0\n"},
		{"zero follow-up questions", "engine:\n  max_followup_questions: 0\n"},
		{"empty cache", "engine:\n  cache_enabled: true\n  cache_size: 0\n"},
		{"zero rate", "rate_limit:\n  requests_per_second: 0\n"},
		{"zero burst", "rate_limit:\n  burst: 0\n"},
		{"bad log level", "logging:\n  level: chatty\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"file output without filename", "logging:\n  output: file\n"},
		{"unsupported transport", "mcp:\n  transport_type: http\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewManagerWithPaths(writeConfigFile(t, tt.body))
			require.NoError(t, err)
			assert.Error(t, m.Validate())
		})
	}
}

func TestManager_DisabledFeaturesSkipValidation(t *testing.T) {
	m, err := NewManagerWithPaths(writeConfigFile(t, `
engine:
  cache_enabled: false
  cache_size: 0
rate_limit:
  enabled: false
  burst: 0
`))
	require.NoError(t, err)
	assert.NoError(t, m.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	const key = "WELLSURE_DOTENV_PROBE"
	t.Cleanup(func() { os.Unsetenv(key) })

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(key+"=loaded\n"), 0o600))

	require.NoError(t, LoadDotEnv(envFile))
	assert.Equal(t, "loaded", os.Getenv(key))

	// missing files are ignored
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
