package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	log.Info().Msg("manifest loaded")

	assert.Contains(t, buf.String(), `"message":"manifest loaded"`)
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "warn", Format: "json", Output: &buf})

	log.Debug().Msg("probing media")
	log.Info().Msg("stats ready")

	assert.Empty(t, buf.String())
}

func TestNewLogger_VerboseOverridesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "error", Format: "json", Output: &buf, Verbose: true})

	log.Debug().Msg("probing media")

	assert.Contains(t, buf.String(), "probing media")
}

func TestNewDefaultLogger(t *testing.T) {
	log := NewDefaultLogger()
	assert.NotNil(t, log)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerOptions{Level: "info", Format: "json", Output: &buf})

	log.WithComponent("auditor").
		WithManifest("/data/golden.json").
		WithCase("hop-01").
		Info().Msg("probe")

	out := buf.String()
	assert.Contains(t, out, `"component":"auditor"`)
	assert.Contains(t, out, `"manifest":"/data/golden.json"`)
	assert.Contains(t, out, `"case":"hop-01"`)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLogLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLogLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, parseLogLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLogLevel("bogus"))
}
