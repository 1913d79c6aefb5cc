package config

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Audit   AuditConfig   `mapstructure:"audit" yaml:"audit"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// AuditConfig contains media-audit settings
type AuditConfig struct {
	FailOnMissing bool `mapstructure:"fail_on_missing" yaml:"fail_on_missing"`
	Progress      bool `mapstructure:"progress" yaml:"progress"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates the configuration, replacing unusable values with
// defaults rather than failing.
func (c *Config) Validate() error {
	if !validLogLevels[c.Logging.Level] {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "pretty" && c.Logging.Format != "json" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
