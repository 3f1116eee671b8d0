package output

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TextFormatter formats documents as human-readable text.
type TextFormatter struct {
	opts   FormatOptions
	colors map[string]*color.Color
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	f := &TextFormatter{
		opts: opts,
		colors: map[string]*color.Color{
			"key":    color.New(color.FgCyan),
			"header": color.New(color.FgWhite, color.Bold),
			"error":  color.New(color.FgRed),
			"title":  color.New(color.FgGreen),
		},
	}
	for _, c := range f.colors {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the documents as text.
func (f *TextFormatter) Format(ctx context.Context, docs []*Document, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(docs, w)
	}

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(docs) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n", f.colors["header"].Sprintf("==> %s <==", doc.Source))
		}
		f.formatDocument(doc, w)
	}
	return nil
}

func (f *TextFormatter) formatQuiet(docs []*Document, w io.Writer) error {
	for _, doc := range docs {
		if doc.Year > 0 {
			fmt.Fprintf(w, "%s: %s (%d)\n", doc.Source, f.colors["title"].Sprint(doc.Title), doc.Year)
		} else {
			fmt.Fprintf(w, "%s: %s\n", doc.Source, f.colors["title"].Sprint(doc.Title))
		}
	}
	return nil
}

func (f *TextFormatter) formatDocument(doc *Document, w io.Writer) {
	if doc.Metadata != nil {
		for k, v := range doc.Metadata.All() {
			fmt.Fprintf(w, "%s\t%s\n", f.colors["key"].Sprint(k+":"), v)
		}
	}

	if !f.opts.Verbose {
		return
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Derived title:\t%s\n", f.colors["title"].Sprint(doc.Title))
	if doc.Year > 0 {
		fmt.Fprintf(w, "Derived year:\t%d\n", doc.Year)
	} else {
		fmt.Fprintln(w, "Derived year:\tunknown")
	}
	if doc.Extractor != "" {
		fmt.Fprintf(w, "Extractor:\t%s\n", doc.Extractor)
	}
	if len(doc.Errors) > 0 {
		fmt.Fprintf(w, "Errors (%d):\n", len(doc.Errors))
		for _, e := range doc.Errors {
			fmt.Fprintf(w, "  %s\n", f.colors["error"].Sprint(e))
		}
	}
}
