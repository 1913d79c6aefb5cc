package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultFailOnMissing, cfg.Audit.FailOnMissing)
	assert.Equal(t, DefaultProgress, cfg.Audit.Progress)
}

func TestConfig_Validate_ClampsLogLevel(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "chatty", Format: "pretty"}}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestConfig_Validate_ClampsLogFormat(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "debug", Format: "xml"}}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func TestConfig_Validate_KeepsValidValues(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "warn", Format: "json"},
		Audit:   AuditConfig{FailOnMissing: true, Progress: false},
	}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Audit.FailOnMissing)
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultProgress, cfg.Audit.Progress)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, ConfigFilePath(), dir)
}
