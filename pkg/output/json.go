package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats documents as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// quietDocument is the summary emitted in quiet mode.
type quietDocument struct {
	Source string `json:"source" yaml:"source"`
	Title  string `json:"title" yaml:"title"`
	Year   int    `json:"year,omitempty" yaml:"year,omitempty"`
}

func quietDocuments(docs []*Document) []quietDocument {
	out := make([]quietDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, quietDocument{Source: d.Source, Title: d.Title, Year: d.Year})
	}
	return out
}

// Format renders the documents as JSON. A single document is written as
// an object, several as an array.
func (f *JSONFormatter) Format(ctx context.Context, docs []*Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		q := quietDocuments(docs)
		if len(q) == 1 {
			return encoder.Encode(q[0])
		}
		return encoder.Encode(q)
	}

	if len(docs) == 1 {
		return encoder.Encode(docs[0])
	}
	return encoder.Encode(docs)
}
