package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders extracted documents in a specific format.
type Formatter interface {
	// Format renders the documents to the given writer.
	Format(ctx context.Context, docs []*Document, w io.Writer) error

	// Name returns the format name (text, json, yaml).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds the derived title, year and extraction errors.
	Verbose bool

	// Quiet prints one summary line per document.
	Quiet bool

	// Color enables ANSI colour in text output.
	Color bool
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text", "":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "yaml":
		return NewYAMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json or yaml)", name)
	}
}
