// Package extract runs metadata extraction tools against documents and
// hands their reports to the pdfinfo parser.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

// Extractor produces a pdfinfo-style report for a document.
type Extractor interface {
	// Extract runs the extraction against path. A returned error means no
	// report could be produced at all; problems the tool reported while
	// producing a report are carried in Result.Stderr.
	Extract(ctx context.Context, path string) (*Result, error)

	// Name identifies the extractor (pdfinfo, native).
	Name() string
}

// Result is the captured output of one extraction.
type Result struct {
	// Source is the document path the report describes.
	Source string

	// Stdout is the report text.
	Stdout []byte

	// Stderr holds the lines written to the error stream.
	Stderr []string

	// ExitCode is the tool's exit status, 0 for in-process extractors.
	ExitCode int

	// Extractor is the name of the extractor that produced the report.
	Extractor string
}

// Open extracts path with ex and builds a parser over the report. Error
// lines from the extraction are logged through logger by the parser.
func Open(ctx context.Context, ex Extractor, path string, logger *slog.Logger) (*pdfinfo.Parser, *Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	res, err := ex.Extract(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	logger.Debug("extracted metadata report",
		"source", path,
		"extractor", res.Extractor,
		"bytes", len(res.Stdout),
		"exit_code", res.ExitCode)

	p := pdfinfo.New(res.Source, string(res.Stdout), res.Stderr, pdfinfo.WithLogger(logger))
	return p, res, nil
}

// splitLines splits captured error output into lines, keeping blank lines
// so the parser sees what the tool wrote.
func splitLines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}
