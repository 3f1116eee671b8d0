package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ccollicutt/pdfmeta/internal/logging"
	"github.com/ccollicutt/pdfmeta/pkg/config"
	"github.com/ccollicutt/pdfmeta/pkg/extract"
	"github.com/ccollicutt/pdfmeta/pkg/output"
	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// AddFlags registers the persistent flags on the root command.
func (g *GlobalOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&g.ConfigPath, "config", "c", "", "Configuration file (YAML)")
	cmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&g.LogFormat, "log-format", "", "Log format (text|json)")
}

// session is the configuration and logger a command runs with.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

// setup loads configuration and builds the logger. Flags override the
// configuration file.
func setup(cmd *cobra.Command, g *GlobalOptions) (context.Context, *session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadOrDefault(ctx, g.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	format := cfg.Logging.Format
	if g.LogFormat != "" {
		format = g.LogFormat
	}

	logger := logging.New(cmd.ErrOrStderr(), format, logging.ParseLevel(level))
	logger.Debug("configuration loaded", "config", g.ConfigPath, "extractor", cfg.Extractor)

	return ctx, &session{cfg: cfg, logger: logger}, nil
}

// extractFlags selects and configures the extractor.
type extractFlags struct {
	Extractor string
	Pdfinfo   string
}

func (f *extractFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Extractor, "extractor", "", "Metadata extractor (auto|pdfinfo|native)")
	cmd.Flags().StringVar(&f.Pdfinfo, "pdfinfo", "", "Path to the pdfinfo binary")
}

func (f *extractFlags) build(rt *session) (extract.Extractor, error) {
	kind := rt.cfg.Extractor
	if f.Extractor != "" {
		kind = f.Extractor
	}
	path := rt.cfg.Pdfinfo.Path
	if f.Pdfinfo != "" {
		path = f.Pdfinfo
	}

	return extract.New(kind, extract.CommandOptions{
		Path:    path,
		Args:    rt.cfg.Pdfinfo.Args,
		Timeout: rt.cfg.Pdfinfo.Timeout,
		Logger:  rt.logger,
	})
}

// openAll expands patterns and parses the report for every matched file.
func openAll(ctx context.Context, rt *session, ex extract.Extractor, patterns []string) ([]*pdfinfo.Parser, []*extract.Result, error) {
	files, err := extract.ExpandGlobs(patterns)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding document paths: %w", err)
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no documents matched patterns: %v", patterns)
	}

	parsers := make([]*pdfinfo.Parser, 0, len(files))
	results := make([]*extract.Result, 0, len(files))
	for _, file := range files {
		p, res, err := extract.Open(ctx, ex, file, rt.logger)
		if err != nil {
			return nil, nil, err
		}
		parsers = append(parsers, p)
		results = append(results, res)
	}
	return parsers, results, nil
}

// outputFlags control how documents are rendered.
type outputFlags struct {
	Output       string
	Verbose      bool
	Quiet        bool
	Color        string
	DefaultTitle string
}

func (f *outputFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, "Include derived title, year and extraction errors")
	cmd.Flags().BoolVarP(&f.Quiet, "quiet", "q", false, "One summary line per document")
	cmd.Flags().StringVar(&f.Color, "color", "", "Colour text output (auto|always|never)")
	cmd.Flags().StringVar(&f.DefaultTitle, "default-title", "", "Title used when the document has none")
}

func (f *outputFlags) formatter(rt *session, w io.Writer) (output.Formatter, error) {
	format := rt.cfg.Output.Format
	if f.Output != "" {
		format = f.Output
	}
	mode := rt.cfg.Output.Color
	if f.Color != "" {
		mode = f.Color
	}

	useColor, err := colorEnabled(mode, w)
	if err != nil {
		return nil, err
	}

	return output.NewFormatter(format, output.FormatOptions{
		Verbose: f.Verbose,
		Quiet:   f.Quiet,
		Color:   useColor,
	})
}

// colorEnabled resolves a colour mode against the destination writer.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (use auto, always or never)", mode)
	}
}
