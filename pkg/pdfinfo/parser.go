// Package pdfinfo turns the textual report printed by pdfinfo-style
// metadata tools into typed, ordered metadata.
package pdfinfo

import (
	"iter"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Field names with special handling.
const (
	FieldTitle        = "Title"
	FieldCreationDate = "CreationDate"
	FieldModDate      = "ModDate"
	FieldFileSize     = "File size"
)

// fieldMarker matches a line that starts a new field: a key without
// colons, a colon, then whitespace or the end of the line.
var fieldMarker = regexp.MustCompile(`^([^:]+):(?:\s+|$)`)

// bytesSuffix matches the unit pdfinfo appends to the file size.
var bytesSuffix = regexp.MustCompile(`(?i) bytes$`)

// Parser holds one captured report and derives metadata from it on demand.
// It is immutable after construction.
type Parser struct {
	source string
	text   string
	errors []string
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report extraction errors.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Parser for the report text captured from source. errLines
// are the lines the extraction tool wrote to its error stream; blank lines
// and consecutive repeats are dropped and the rest are logged right away.
func New(source, text string, errLines []string, opts ...Option) *Parser {
	p := &Parser{
		source: source,
		text:   text,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}

	if len(errLines) > 0 {
		p.logger.Error("errors from metadata extraction", "source", source, "count", len(errLines))
		last := ""
		for _, line := range errLines {
			if line == "" || line == last {
				continue
			}
			p.errors = append(p.errors, line)
			p.logger.Error(line, "source", source)
			last = line
		}
	}

	return p
}

// Source returns the identifier the report was produced for.
func (p *Parser) Source() string { return p.source }

// Text returns the raw report.
func (p *Parser) Text() string { return p.text }

// Errors returns the recorded extraction error lines.
func (p *Parser) Errors() []string {
	return append([]string(nil), p.errors...)
}

// Fields scans the report and yields each field with its typed value in
// report order. Every call rescans the report.
func (p *Parser) Fields() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for key, raw := range rawFields(p.text) {
			v, ok := typeValue(key, raw)
			if !ok {
				continue
			}
			if !yield(key, v) {
				return
			}
		}
	}
}

// Metadata collects Fields into an ordered mapping. A key repeated in the
// report keeps its first position and takes its last value.
func (p *Parser) Metadata() *Metadata {
	m := NewMetadata()
	for k, v := range p.Fields() {
		m.Set(k, v)
	}
	return m
}

// String renders the report as "key:\tvalue" lines.
func (p *Parser) String() string {
	var lines []string
	for k, v := range p.Fields() {
		lines = append(lines, k+":\t"+v.String())
	}
	return strings.Join(lines, "\n")
}

// rawFields splits text into untyped (key, value) pairs. Whitespace after a
// key's colon is consumed, including line breaks; following lines without a
// marker continue the value. Blank lines trailing a value are dropped.
func rawFields(text string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		var key string
		var value strings.Builder
		open := false

		flush := func() bool {
			if !open {
				return true
			}
			v := strings.TrimLeft(value.String(), " \t\r\n\v\f")
			return yield(key, strings.TrimRight(v, "\n"))
		}

		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if m := fieldMarker.FindStringSubmatchIndex(line); m != nil {
				if !flush() {
					return
				}
				key = line[m[2]:m[3]]
				value.Reset()
				value.WriteString(line[m[1]:])
				open = true
				continue
			}
			if open {
				value.WriteByte('\n')
				value.WriteString(line)
			}
		}
		flush()
	}
}

// typeValue converts a raw field value. ok is false when the field is
// dropped altogether.
func typeValue(key, raw string) (v Value, ok bool) {
	switch {
	case key == FieldCreationDate || key == FieldModDate:
		if raw == "" {
			return Value{}, false
		}
		return timestampOr(raw), true
	case raw == "yes" || raw == "no":
		return Bool(raw == "yes"), true
	case strings.ToUpper(raw) == "NONE":
		return Null(), true
	case key == FieldFileSize:
		return intOr(bytesSuffix.ReplaceAllString(raw, ""), raw), true
	default:
		return intOr(raw, raw), true
	}
}

// intOr parses s as an integer, falling back to the string value fallback.
func intOr(s, fallback string) Value {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return String(fallback)
	}
	return Int(n)
}
