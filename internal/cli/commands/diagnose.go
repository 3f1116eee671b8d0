package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/pdfmeta/pkg/config"
	"github.com/ccollicutt/pdfmeta/pkg/extract"
	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Verbose bool
	Color   string
	extract extractFlags
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand(g *GlobalOptions) *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <file|glob>...",
		Short: "Diagnose problems reading PDF metadata",
		Long: `Diagnose problems reading the metadata of PDF documents.

This command checks:
- Configuration file syntax and settings
- pdfinfo availability
- Document existence and PDF header
- PDF structure (relaxed validation)
- Extraction errors and unrecognised dates
- Webhook configuration

Example:
  pdfmeta diagnose report.pdf
  pdfmeta diagnose -v 'archive/*.pdf'  # verbose output`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args, g, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Colour output (auto|always|never)")
	opts.extract.add(cmd)

	return cmd
}

func runDiagnose(cmd *cobra.Command, args []string, g *GlobalOptions, opts *DiagnoseOptions) error {
	ExitCode = 0
	w := cmd.OutOrStdout()
	results := []DiagnosticResult{}

	// 1. Configuration
	ctx, rt, err := setup(cmd, g)
	if err != nil {
		results = append(results, DiagnosticResult{
			Check:    "Configuration",
			Status:   "error",
			Message:  err.Error(),
			Suggests: []string{"Run 'pdfmeta validate <config-file>' for details"},
		})
		return printDiagnostics(w, results, opts, "")
	}
	results = append(results, checkConfig(g, rt.cfg))

	// 2. Extraction tool
	results = append(results, checkTool(rt.cfg, &opts.extract))

	// 3. Documents
	ex, err := opts.extract.build(rt)
	if err != nil {
		return err
	}
	files, err := extract.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding document paths: %w", err)
	}
	validator := extract.NewValidator()
	for _, file := range files {
		results = append(results, checkDocument(ctx, rt, ex, validator, file, opts)...)
	}

	// 4. Webhooks
	results = append(results, checkWebhooks(rt.cfg, opts)...)

	return printDiagnostics(w, results, opts, rt.cfg.Output.Color)
}

func checkConfig(g *GlobalOptions, cfg *config.Config) DiagnosticResult {
	result := DiagnosticResult{
		Check:  "Configuration",
		Status: "ok",
	}
	if g.ConfigPath == "" {
		result.Message = "Using defaults (no config file)"
	} else {
		result.Message = fmt.Sprintf("Loaded %s", g.ConfigPath)
	}
	result.Details = []string{
		fmt.Sprintf("Extractor: %s", cfg.Extractor),
		fmt.Sprintf("Timeout: %s", cfg.Pdfinfo.Timeout),
	}
	return result
}

func checkTool(cfg *config.Config, flags *extractFlags) DiagnosticResult {
	result := DiagnosticResult{Check: "pdfinfo"}

	kind := cfg.Extractor
	if flags.Extractor != "" {
		kind = flags.Extractor
	}
	path := cfg.Pdfinfo.Path
	if flags.Pdfinfo != "" {
		path = flags.Pdfinfo
	}

	if kind == extract.KindNative {
		result.Status = "ok"
		result.Message = "Not used (native extractor selected)"
		return result
	}

	bin, err := extract.LocateTool(extract.DefaultToolName, path)
	switch {
	case err == nil:
		result.Status = "ok"
		result.Message = fmt.Sprintf("Found %s", bin)
	case kind == extract.KindAuto && errors.Is(err, extract.ErrToolNotFound):
		result.Status = "warning"
		result.Message = "Not found, the native extractor will be used"
		result.Suggests = []string{
			"Install poppler-utils for the most complete reports",
			fmt.Sprintf("Or place pdfinfo in ~/%s/", extract.ToolDir),
		}
	default:
		result.Status = "error"
		result.Message = err.Error()
		result.Suggests = []string{
			"Install poppler-utils or set pdfinfo.path",
			"Or use --extractor native",
		}
	}
	return result
}

func checkDocument(ctx context.Context, rt *session, ex extract.Extractor, validator *extract.Validator, path string, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	result := checkFile(path)
	results = append(results, result)
	if result.Status == "error" {
		return results
	}

	result = DiagnosticResult{Check: fmt.Sprintf("Structure: %s", path)}
	if err := validator.Validate(path); err != nil {
		result.Status = "warning"
		result.Message = "Document does not validate"
		result.Details = []string{err.Error()}
		result.Suggests = []string{"Readers usually tolerate this, but some fields may be missing"}
	} else {
		result.Status = "ok"
		result.Message = "Valid (relaxed)"
	}
	results = append(results, result)

	p, res, err := extract.Open(ctx, ex, path, rt.logger)
	result = DiagnosticResult{Check: fmt.Sprintf("Metadata: %s", path)}
	if err != nil {
		result.Status = "error"
		result.Message = err.Error()
		return append(results, result)
	}

	md := p.Metadata()
	result.Message = fmt.Sprintf("%d field(s) via %s", md.Len(), res.Extractor)
	issues := []string{}
	for _, line := range p.Errors() {
		issues = append(issues, truncate(line, 100))
	}
	for _, key := range []string{pdfinfo.FieldCreationDate, pdfinfo.FieldModDate} {
		if v, ok := md.Get(key); ok && v.Kind() == pdfinfo.KindString {
			issues = append(issues, fmt.Sprintf("%s not recognised as a date: %q", key, v.String()))
		}
	}

	switch {
	case len(issues) > 0:
		result.Status = "warning"
		result.Details = issues
	case md.Len() == 0:
		result.Status = "warning"
		result.Message = "Report has no fields"
	default:
		result.Status = "ok"
		if opts.Verbose {
			result.Details = []string{
				fmt.Sprintf("Title: %s", p.Title("")),
				fmt.Sprintf("Year: %d", p.Year()),
			}
		}
	}

	return append(results, result)
}

func checkFile(path string) DiagnosticResult {
	result := DiagnosticResult{Check: fmt.Sprintf("Document: %s", path)}

	f, err := os.Open(path) // #nosec G304 -- user-provided document path is expected
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = "File not found"
		result.Suggests = []string{"Check the path or quote glob patterns"}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot open: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	defer f.Close()

	head := make([]byte, 8)
	n, _ := io.ReadFull(f, head)
	if !bytes.HasPrefix(head[:n], []byte("%PDF-")) {
		result.Status = "error"
		result.Message = "Missing %PDF- header, not a PDF file"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Header %s", bytes.TrimSpace(head[:n]))
	return result
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions, configColor string) error {
	mode := configColor
	if opts.Color != "" {
		mode = opts.Color
	}
	useColor, err := colorEnabled(mode, w)
	if err != nil {
		return err
	}
	icons := map[string]*color.Color{
		"ok":      color.New(color.FgGreen),
		"warning": color.New(color.FgYellow),
		"error":   color.New(color.FgRed, color.Bold),
	}
	for _, c := range icons {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	fmt.Fprintln(w, "=== pdfmeta Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icons[r.Status].Sprint(icon), r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Fprintln(w, "\nFix the errors above before reading metadata.")
		ExitCode = 1
	} else if warnCount > 0 {
		fmt.Fprintln(w, "\nMetadata can be read but some checks raised warnings.")
	} else {
		fmt.Fprintln(w, "\nEverything looks good!")
	}
	return nil
}

func checkWebhooks(cfg *config.Config, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	if len(cfg.Webhooks) == 0 {
		if opts.Verbose {
			results = append(results, DiagnosticResult{
				Check:   "Webhooks",
				Status:  "ok",
				Message: "No webhooks configured (optional)",
			})
		}
		return results
	}

	for _, wh := range cfg.Webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		result := DiagnosticResult{
			Check:   fmt.Sprintf("Webhook: %s", name),
			Status:  "ok",
			Message: fmt.Sprintf("Trigger: %s", wh.Trigger),
		}
		if wh.Token == "" && wh.Trigger != config.WebhookTriggerNever && strings.HasPrefix(wh.URL, "http://") {
			result.Status = "warning"
			result.Details = []string{"Plain http endpoint without a token"}
		} else if opts.Verbose {
			result.Details = []string{
				fmt.Sprintf("URL: %s", wh.URL),
				fmt.Sprintf("Timeout: %s", wh.Timeout),
			}
			if wh.Token != "" {
				result.Details = append(result.Details, "Token: configured")
			}
		}
		results = append(results, result)

		if opts.Verbose {
			conn := checkWebhookConnectivity(wh)
			conn.Check = fmt.Sprintf("Webhook Connectivity: %s", name)
			results = append(results, conn)
		}
	}

	return results
}

func checkWebhookConnectivity(wh config.WebhookConfig) DiagnosticResult {
	result := DiagnosticResult{}

	// A HEAD request is enough to tell whether the endpoint is reachable
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	req, err := http.NewRequest(http.MethodHead, wh.URL, nil)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot create request: %v", err)
		return result
	}

	if wh.Token != "" {
		req.Header.Set("Authorization", "Bearer "+wh.Token)
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Cannot connect: %v", err)
		result.Suggests = []string{
			"Check if the webhook URL is correct",
			"Verify network connectivity",
		}
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.Status = "ok"
		result.Message = fmt.Sprintf("Reachable (status %d)", resp.StatusCode)
	} else {
		result.Status = "warning"
		result.Message = fmt.Sprintf("Reachable but returned status %d", resp.StatusCode)
		result.Suggests = []string{
			"The endpoint may only accept POST (sending will still work)",
			"Check authentication if using a token",
		}
	}

	return result
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
