package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pdfmeta/pkg/output"
	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Source     string
	ErrorsFile string
	output     outputFlags
}

// NewParseCommand creates the parse command.
func NewParseCommand(g *GlobalOptions) *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a captured pdfinfo report",
		Long: `Parse a pdfinfo report that was captured earlier, without running any
extractor. The report is read from the file argument, or from standard
input when the argument is "-" or missing.

  pdfinfo report.pdf 2>errors.txt | pdfmeta parse --source report.pdf --errors errors.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, g, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Document name the report was produced for")
	cmd.Flags().StringVar(&opts.ErrorsFile, "errors", "", "File holding the extractor's error output")
	opts.output.add(cmd)

	return cmd
}

func runParse(cmd *cobra.Command, args []string, g *GlobalOptions, opts *ParseOptions) error {
	ExitCode = 0

	ctx, rt, err := setup(cmd, g)
	if err != nil {
		return err
	}

	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	text, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	var errLines []string
	if opts.ErrorsFile != "" {
		data, err := os.ReadFile(opts.ErrorsFile) // #nosec G304 -- user-provided path is expected
		if err != nil {
			return fmt.Errorf("reading errors file: %w", err)
		}
		errLines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	source := opts.Source
	if source == "" && input != "-" {
		source = input
	}

	p := pdfinfo.New(source, text, errLines, pdfinfo.WithLogger(rt.logger))
	docs := []*output.Document{output.NewDocument(p, nil, opts.output.DefaultTitle)}

	w := cmd.OutOrStdout()
	formatter, err := opts.output.formatter(rt, w)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, docs, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if output.AnyErrors(docs) {
		ExitCode = 1
	}
	return nil
}

func readInput(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name) // #nosec G304 -- user-provided path is expected
	if err != nil {
		return "", fmt.Errorf("reading report: %w", err)
	}
	return string(data), nil
}
