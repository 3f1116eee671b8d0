package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/ledongthuc/pdf"
)

// NativeName is the name of the in-process extractor.
const NativeName = "native"

// infoKeys are the document information dictionary entries reported, in
// the order pdfinfo prints them.
var infoKeys = []string{"Title", "Subject", "Keywords", "Author", "Creator", "Producer", "CreationDate", "ModDate"}

var headerVersion = regexp.MustCompile(`%PDF-(\d+\.\d+)`)

// Native reads document metadata in-process and renders it in the same
// layout pdfinfo prints, so the output flows through the same parser.
type Native struct {
	validator *Validator
}

// NewNative creates a Native extractor. A nil validator skips structural
// validation.
func NewNative(validator *Validator) *Native {
	return &Native{validator: validator}
}

// Name returns the extractor name.
func (n *Native) Name() string {
	return NativeName
}

// Extract reads path and builds a pdfinfo-style report.
func (n *Native) Extract(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	version, err := readHeaderVersion(f)
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	var buf bytes.Buffer
	trailer := r.Trailer()
	infoDict := trailer.Key("Info")
	for _, key := range infoKeys {
		v := infoDict.Key(key)
		if v.IsNull() {
			continue
		}
		if key == "CreationDate" || key == "ModDate" {
			writeField(&buf, key, v.RawString())
			continue
		}
		writeField(&buf, key, v.Text())
	}

	root := trailer.Key("Root")
	writeField(&buf, "Tagged", yesNo(root.Key("MarkInfo").Key("Marked").Bool()))
	if root.Key("AcroForm").IsNull() {
		writeField(&buf, "Form", "none")
	} else {
		writeField(&buf, "Form", "AcroForm")
	}
	writeField(&buf, "Pages", fmt.Sprint(r.NumPage()))
	writeField(&buf, "Encrypted", yesNo(!trailer.Key("Encrypt").IsNull()))
	writeField(&buf, "File size", fmt.Sprintf("%d bytes", info.Size()))
	writeField(&buf, "PDF version", version)

	res := &Result{
		Source:    path,
		Stdout:    buf.Bytes(),
		Extractor: n.Name(),
	}

	if n.validator != nil {
		if err := n.validator.Validate(path); err != nil {
			res.Stderr = splitLines([]byte("Syntax Error: " + err.Error()))
		}
	}

	return res, nil
}

// writeField writes one report line with the key padded the way pdfinfo
// aligns its values.
func writeField(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%-15s %s\n", key+":", value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// readHeaderVersion reads the version from the %PDF-x.y header within the
// first kilobyte.
func readHeaderVersion(f *os.File) (string, error) {
	head := make([]byte, 1024)
	n, err := f.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return "", err
	}
	if m := headerVersion.FindSubmatch(head[:n]); m != nil {
		return string(m[1]), nil
	}
	return "unknown", nil
}
