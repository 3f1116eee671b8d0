// Package output provides formatting for extracted PDF metadata.
package output

import (
	"github.com/ccollicutt/pdfmeta/pkg/extract"
	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

// Document is the rendered view of one parsed report.
type Document struct {
	// Source identifies the document the report was produced for.
	Source string `json:"source" yaml:"source"`

	// Title is the derived document title.
	Title string `json:"title" yaml:"title"`

	// Year is the creation (or modification) year, 0 if unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Extractor names what produced the report. Empty for captured reports.
	Extractor string `json:"extractor,omitempty" yaml:"extractor,omitempty"`

	// Metadata holds the typed fields in report order.
	Metadata *pdfinfo.Metadata `json:"metadata" yaml:"metadata"`

	// Errors are the error lines recorded during extraction.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewDocument builds a Document from a parser. res may be nil when the
// report did not come from an extractor.
func NewDocument(p *pdfinfo.Parser, res *extract.Result, defaultTitle string) *Document {
	doc := &Document{
		Source:   p.Source(),
		Title:    p.Title(defaultTitle),
		Year:     p.Year(),
		Metadata: p.Metadata(),
		Errors:   p.Errors(),
	}
	if res != nil {
		doc.Extractor = res.Extractor
	}
	return doc
}

// HasErrors reports whether extraction recorded any error lines.
func (d *Document) HasErrors() bool {
	return len(d.Errors) > 0
}

// AnyErrors reports whether any of docs has extraction errors.
func AnyErrors(docs []*Document) bool {
	for _, d := range docs {
		if d.HasErrors() {
			return true
		}
	}
	return false
}
