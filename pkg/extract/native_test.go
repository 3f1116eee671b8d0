package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

// writeTestPDF writes a one-page PDF with an information dictionary and
// returns its path.
func writeTestPDF(t *testing.T, name string) string {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>",
		"<< /Title (Quarterly Numbers) /Author (Jane Doe) /Producer (pdfmeta test) /CreationDate (D:20190307102133Z) >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 4 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestNative_Extract(t *testing.T) {
	path := writeTestPDF(t, "quarterly_numbers.pdf")

	res, err := NewNative(nil).Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "native", res.Extractor)
	assert.Equal(t, path, res.Source)
	assert.Empty(t, res.Stderr)

	p := pdfinfo.New(res.Source, string(res.Stdout), res.Stderr)
	md := p.Metadata()

	title, _ := md.Get("Title")
	assert.Equal(t, pdfinfo.String("Quarterly Numbers"), title)
	author, _ := md.Get("Author")
	assert.Equal(t, pdfinfo.String("Jane Doe"), author)
	pages, _ := md.Get("Pages")
	assert.Equal(t, pdfinfo.Int(1), pages)
	encrypted, _ := md.Get("Encrypted")
	assert.Equal(t, pdfinfo.Bool(false), encrypted)
	form, _ := md.Get("Form")
	assert.True(t, form.IsNull())
	version, _ := md.Get("PDF version")
	assert.Equal(t, pdfinfo.String("1.4"), version)

	info, err := os.Stat(path)
	require.NoError(t, err)
	size, _ := md.Get("File size")
	assert.Equal(t, pdfinfo.Int(info.Size()), size)

	assert.False(t, md.Has("ModDate"))
	assert.Equal(t, 2019, p.Year())
}

func TestNative_MissingFile(t *testing.T) {
	_, err := NewNative(nil).Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestNative_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0644))

	_, err := NewNative(nil).Extract(context.Background(), path)
	assert.Error(t, err)
}

func TestNative_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNative(nil).Extract(ctx, writeTestPDF(t, "doc.pdf"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidator_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nnot really a pdf\n"), 0644))

	assert.Error(t, NewValidator().Validate(path))
}
