package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pdfmeta/pkg/config"
	"github.com/ccollicutt/pdfmeta/pkg/output"
	"github.com/ccollicutt/pdfmeta/pkg/webhook"
)

// webhookFlags hold a webhook given on the command line.
type webhookFlags struct {
	URL     string
	Token   string
	Trigger string
}

func (f *webhookFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.URL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&f.Token, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&f.Trigger, "webhook-trigger", "on_errors", "When to fire webhook (on_errors|always|never)")
}

// sendWebhooks posts the documents to all configured webhooks.
// Failures are logged but don't fail the command.
func sendWebhooks(ctx context.Context, cfg *config.Config, flags *webhookFlags, docs []*output.Document, logger *slog.Logger) {
	webhooks := collectWebhooks(cfg, flags)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()
	payload := webhook.NewPayload(docs)

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, payload.HasErrors) {
			continue
		}

		resp := client.Send(ctx, payload, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			logger.Info("webhook sent", "webhook", name, "status", resp.StatusCode, "duration", resp.Duration)
		} else {
			logger.Warn("webhook failed", "webhook", name, "error", resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, flags *webhookFlags) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if flags != nil && flags.URL != "" {
		trigger := config.WebhookTrigger(flags.Trigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnErrors
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     flags.URL,
			Token:   flags.Token,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire based on trigger and errors.
func shouldFireWebhook(trigger config.WebhookTrigger, hasErrors bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasErrors
	}
}
