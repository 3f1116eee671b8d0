package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pdfmeta/pkg/output"
)

// ShowOptions holds command-line options for the show command.
type ShowOptions struct {
	extract extractFlags
	output  outputFlags
	webhook webhookFlags
}

// NewShowCommand creates the show command.
func NewShowCommand(g *GlobalOptions) *cobra.Command {
	opts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <file|glob>...",
		Short: "Show the metadata of PDF documents",
		Long: `Extract and display the metadata of one or more PDF documents.

Each field of the pdfinfo report is typed: dates become timestamps,
yes/no become booleans, counts and the file size become integers.

Exit codes:
  0 - Metadata extracted without errors
  1 - The extractor reported errors for at least one document
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, g, opts)
		},
	}

	opts.extract.add(cmd)
	opts.output.add(cmd)
	opts.webhook.add(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string, g *GlobalOptions, opts *ShowOptions) error {
	ExitCode = 0

	ctx, rt, err := setup(cmd, g)
	if err != nil {
		return err
	}

	ex, err := opts.extract.build(rt)
	if err != nil {
		return err
	}

	parsers, results, err := openAll(ctx, rt, ex, args)
	if err != nil {
		return err
	}

	docs := make([]*output.Document, 0, len(parsers))
	for i, p := range parsers {
		docs = append(docs, output.NewDocument(p, results[i], opts.output.DefaultTitle))
	}

	w := cmd.OutOrStdout()
	formatter, err := opts.output.formatter(rt, w)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, docs, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	sendWebhooks(ctx, rt.cfg, &opts.webhook, docs, rt.logger)

	if output.AnyErrors(docs) {
		ExitCode = 1
	}

	return nil
}
