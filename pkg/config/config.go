package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns the validated defaults (with
// environment overrides) when path is empty.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors and fills in defaults.
func Validate(cfg *Config) error {
	switch cfg.Extractor {
	case "":
		cfg.Extractor = DefaultExtractor
	case "auto", "pdfinfo", "native":
	default:
		return fmt.Errorf("extractor: invalid value %q (must be auto, pdfinfo, or native)", cfg.Extractor)
	}

	if cfg.Pdfinfo.Timeout < 0 {
		return errors.New("pdfinfo.timeout: must not be negative")
	}
	if cfg.Pdfinfo.Timeout == 0 {
		cfg.Pdfinfo.Timeout = DefaultPdfinfoTimeout
	}

	if err := validateOutput(&cfg.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if err := validateLogging(&cfg.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateOutput(out *OutputConfig) error {
	switch out.Format {
	case "":
		out.Format = DefaultOutputFormat
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format %q (must be text, json, or yaml)", out.Format)
	}

	switch out.Color {
	case "":
		out.Color = DefaultColor
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (must be auto, always, or never)", out.Color)
	}

	return nil
}

func validateLogging(lc *LoggingConfig) error {
	switch strings.ToLower(lc.Level) {
	case "":
		lc.Level = DefaultLogLevel
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid level %q (must be debug, info, warn, or error)", lc.Level)
	}

	switch lc.Format {
	case "":
		lc.Format = DefaultLogFormat
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (must be text or json)", lc.Format)
	}

	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	wh.Token = expandEnvVar(wh.Token)

	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerOnErrors, WebhookTriggerAlways, WebhookTriggerNever:
		default:
			return fmt.Errorf("invalid trigger %q (must be on_errors, always, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerOnErrors
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		return os.Getenv(s[1:])
	}

	return s
}
