package pdfinfo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts tried before the permissive parser. The first two are what
// pdfinfo prints by default, the rest what it prints with -isodates.
var timestampLayouts = []string{
	"Mon Jan _2 15:04:05 2006 MST",
	"Mon Jan _2 15:04:05 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-07",
	"2006-01-02T15:04:05",
}

// pdfDatePattern matches the raw PDF date form D:YYYYMMDDHHmmSSOHH'mm'.
// Everything after the year is optional.
var pdfDatePattern = regexp.MustCompile(`^D:(\d{4})(\d{2})?(\d{2})?(\d{2})?(\d{2})?(\d{2})?(?:([Zz+-])(?:(\d{2})'?(?:(\d{2})'?)?)?)?$`)

// ErrEmptyTimestamp is returned for blank input.
var ErrEmptyTimestamp = errors.New("empty timestamp")

// ParseTimestamp parses a date as printed by pdfinfo. It accepts pdfinfo's
// default and ISO layouts, raw PDF dates, and falls back to a permissive
// parser for anything else.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	if strings.HasPrefix(s, "D:") {
		return parsePDFDate(s)
	}

	ts, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	if ts.IsZero() {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: no date found", s)
	}
	return ts, nil
}

// timestampOr parses raw as a timestamp, returning raw unchanged as a
// string value when it cannot be parsed.
func timestampOr(raw string) Value {
	ts, err := ParseTimestamp(raw)
	if err != nil {
		return String(raw)
	}
	return Time(ts)
}

func parsePDFDate(s string) (time.Time, error) {
	m := pdfDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: not a PDF date", s)
	}

	year := atoiDefault(m[1], 0)
	month := atoiDefault(m[2], 1)
	day := atoiDefault(m[3], 1)
	hour := atoiDefault(m[4], 0)
	minute := atoiDefault(m[5], 0)
	second := atoiDefault(m[6], 0)

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: field out of range", s)
	}

	loc := time.UTC
	switch m[7] {
	case "+", "-":
		offset := atoiDefault(m[8], 0)*3600 + atoiDefault(m[9], 0)*60
		if m[7] == "-" {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
