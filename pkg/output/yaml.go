package output

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats documents as YAML.
type YAMLFormatter struct {
	opts FormatOptions
}

// NewYAMLFormatter creates a new YAML formatter with the given options.
func NewYAMLFormatter(opts FormatOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Name returns the format name.
func (f *YAMLFormatter) Name() string {
	return "yaml"
}

// Format renders the documents as YAML, one document per YAML document.
func (f *YAMLFormatter) Format(ctx context.Context, docs []*Document, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if f.opts.Quiet {
		for _, q := range quietDocuments(docs) {
			if err := encoder.Encode(q); err != nil {
				return fmt.Errorf("encoding yaml: %w", err)
			}
		}
		return encoder.Close()
	}

	for _, d := range docs {
		if err := encoder.Encode(d); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	}
	return encoder.Close()
}
