package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// Audit defaults
	DefaultFailOnMissing = false
	DefaultProgress      = true
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".goldenset"
	}
	return filepath.Join(home, ".goldenset")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Audit: AuditConfig{
			FailOnMissing: DefaultFailOnMissing,
			Progress:      DefaultProgress,
		},
	}
}
