// Package config provides configuration loading and validation for pdfmeta.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Extractor selects how reports are produced: auto, pdfinfo or native.
	Extractor string `yaml:"extractor"`

	Pdfinfo  PdfinfoConfig   `yaml:"pdfinfo"`
	Output   OutputConfig    `yaml:"output"`
	Logging  LoggingConfig   `yaml:"logging"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// PdfinfoConfig controls the external pdfinfo invocation.
type PdfinfoConfig struct {
	// Path is an explicit pdfinfo binary. Empty means search for it.
	Path string `yaml:"path,omitempty"`

	// Args are extra arguments placed before the document path,
	// e.g. ["-isodates"] or ["-enc", "UTF-8"].
	Args []string `yaml:"args,omitempty"`

	// Timeout bounds a single invocation.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// OutputConfig sets formatting defaults for the CLI.
type OutputConfig struct {
	// Format is text, json or yaml.
	Format string `yaml:"format"`

	// Color is auto, always or never.
	Color string `yaml:"color"`
}

// LoggingConfig sets the diagnostic logger.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnErrors fires only when extraction reported errors (default).
	WebhookTriggerOnErrors WebhookTrigger = "on_errors"
	// WebhookTriggerAlways fires after every run.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines an endpoint that receives extracted metadata.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_errors" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
