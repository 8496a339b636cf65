// Package logging builds the logrus logger shared by the HTTP and MCP servers.
package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 12

// NewLogger creates a logger from configuration. Output "file" appends to
// cfg.Filename; anything else other than "stderr" writes to stdout.
func NewLogger(cfg domain.LoggingConfig) (*logrus.Logger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	out, err := openOutput(cfg)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(out)

	return logger, nil
}

func openOutput(cfg domain.LoggingConfig) (io.Writer, error) {
	switch strings.ToLower(cfg.Output) {
	case "stderr":
		return os.Stderr, nil
	case "file":
		if cfg.Filename == "" {
			return nil, fmt.Errorf("log output is file but no filename is configured")
		}
		f, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, nil
	default:
		return os.Stdout, nil
	}
}

// Fingerprint identifies symptom text in logs without recording it. Symptom
// descriptions are health information and must never be logged verbatim.
func Fingerprint(text string) logrus.Fields {
	sum := sha256.Sum256([]byte(text))
	return logrus.Fields{
		"symptom_chars": utf8.RuneCountInString(text),
		"symptom_fp":    hex.EncodeToString(sum[:])[:fingerprintLen],
	}
}
