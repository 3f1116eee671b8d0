package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pdfmeta/pkg/config"
	"github.com/ccollicutt/pdfmeta/pkg/extract"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a pdfmeta configuration file.

Checks:
  - YAML syntax
  - Extractor, output and logging settings
  - Webhook URLs and triggers
  - pdfinfo availability (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Extractor: %s\n", cfg.Extractor)
	if len(cfg.Pdfinfo.Args) > 0 {
		fmt.Fprintf(w, "  Arguments: %s\n", strings.Join(cfg.Pdfinfo.Args, " "))
	}
	fmt.Fprintf(w, "  Timeout:   %s\n", cfg.Pdfinfo.Timeout)
	fmt.Fprintf(w, "  Output:    %s (color %s)\n", cfg.Output.Format, cfg.Output.Color)
	fmt.Fprintf(w, "  Logging:   %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)

	if len(cfg.Webhooks) > 0 {
		fmt.Fprintf(w, "\nWebhooks:\n")
		for i, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Fprintf(w, "  %d. %s [%s]\n", i+1, name, wh.Trigger)
		}
	}

	if cfg.Extractor != extract.KindNative {
		bin, err := extract.LocateTool(extract.DefaultToolName, cfg.Pdfinfo.Path)
		switch {
		case err == nil:
			fmt.Fprintf(w, "\npdfinfo: %s\n", bin)
		case cfg.Extractor == extract.KindAuto && errors.Is(err, extract.ErrToolNotFound):
			fmt.Fprintf(w, "\nWarning: pdfinfo not found, the native extractor will be used\n")
		default:
			fmt.Fprintf(w, "\nWarning: %v\n", err)
		}
	}

	return nil
}
