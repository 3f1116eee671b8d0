package pdfinfo

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title returns the document title. Without a default, the title is derived
// from the source's file name: directory and extension removed, underscores
// turned into spaces, each word capitalised. A Title field in the report
// overrides either, trimmed of surrounding whitespace.
func (p *Parser) Title(def string) string {
	title := def
	if title == "" {
		title = TitleFromPath(p.source)
	}

	if v, ok := p.Metadata().Get(FieldTitle); ok && !v.IsNull() {
		title = strings.TrimSpace(v.String())
	}
	return title
}

// Year returns the year of the creation date, or of the modification date
// when there is no parsed creation date, or 0.
func (p *Parser) Year() int {
	md := p.Metadata()
	for _, key := range []string{FieldCreationDate, FieldModDate} {
		if v, ok := md.Get(key); ok {
			if ts, ok := v.AsTime(); ok {
				return ts.Year()
			}
		}
	}
	return 0
}

// TitleFromPath builds a display title from a file path,
// e.g. "/docs/annual_report.pdf" becomes "Annual Report". Only the first
// letter of each space-separated word is upper-cased, so "my-document"
// becomes "My-document".
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		base = stem
	}
	words := strings.Fields(strings.ReplaceAll(base, "_", " "))

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}
