package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultExtractor      = "auto"
	DefaultPdfinfoTimeout = 30 * time.Second
	DefaultOutputFormat   = "text"
	DefaultColor          = "auto"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvExtractor   = "PDFMETA_EXTRACTOR"
	EnvPdfinfoPath = "PDFMETA_PDFINFO_PATH"
	EnvLogLevel    = "PDFMETA_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Extractor: DefaultExtractor,
		Pdfinfo: PdfinfoConfig{
			Timeout: DefaultPdfinfoTimeout,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
			Color:  DefaultColor,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvExtractor); v != "" {
		c.Extractor = v
	}
	if v := os.Getenv(EnvPdfinfoPath); v != "" {
		c.Pdfinfo.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}
