package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

const fakeTool = `#!/bin/sh
cat <<'REPORT'
Title:          Fake Document
Pages:          2
File size:      2048 bytes
REPORT
echo "Args:           $*"
echo "Syntax Warning: something odd" >&2
echo "Syntax Warning: something odd" >&2
exit 1
`

func writeTool(t *testing.T, script string) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "pdfinfo")
	require.NoError(t, os.WriteFile(bin, []byte(script), 0755))
	return bin
}

func TestCommand_Extract(t *testing.T) {
	bin := writeTool(t, fakeTool)
	ex := NewCommand(CommandOptions{Path: bin, Args: []string{"-enc", "UTF-8"}})

	res, err := ex.Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, "doc.pdf", res.Source)
	assert.Equal(t, "pdfinfo", res.Extractor)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, []string{"Syntax Warning: something odd", "Syntax Warning: something odd"}, res.Stderr)
	assert.Contains(t, string(res.Stdout), "Fake Document")
}

func TestOpen_ParsesCommandOutput(t *testing.T) {
	bin := writeTool(t, fakeTool)
	ex := NewCommand(CommandOptions{Path: bin, Args: []string{"-enc", "UTF-8"}})

	p, res, err := Open(context.Background(), ex, "doc.pdf", nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	md := p.Metadata()
	pages, _ := md.Get("Pages")
	assert.Equal(t, pdfinfo.Int(2), pages)
	size, _ := md.Get("File size")
	assert.Equal(t, pdfinfo.Int(2048), size)
	args, _ := md.Get("Args")
	assert.Equal(t, pdfinfo.String("-enc UTF-8 doc.pdf"), args)

	assert.Equal(t, "Fake Document", p.Title(""))
	assert.Equal(t, []string{"Syntax Warning: something odd"}, p.Errors())
}

func TestCommand_ToolMissing(t *testing.T) {
	ex := NewCommand(CommandOptions{Path: filepath.Join(t.TempDir(), "nope")})

	_, err := ex.Extract(context.Background(), "doc.pdf")
	assert.True(t, errors.Is(err, ErrToolNotExecutable), "got %v", err)
}

func TestNew_AutoReportsUnusableExplicitTool(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("%PDF-1.4\n"), 0644))

	ex, err := New(KindAuto, CommandOptions{Path: filepath.Join(dir, "no-such-pdfinfo")})
	require.NoError(t, err)

	_, err = ex.Extract(context.Background(), doc)
	assert.True(t, errors.Is(err, ErrToolNotExecutable), "got %v", err)
}

func TestCommand_Timeout(t *testing.T) {
	bin := writeTool(t, "#!/bin/sh\nexec sleep 5\n")
	ex := NewCommand(CommandOptions{Path: bin, Timeout: 50 * time.Millisecond})

	_, err := ex.Extract(context.Background(), "doc.pdf")
	assert.Error(t, err)
}

type stubExtractor struct {
	name  string
	res   *Result
	err   error
	calls int
}

func (s *stubExtractor) Name() string { return s.name }

func (s *stubExtractor) Extract(_ context.Context, path string) (*Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	res := *s.res
	res.Source = path
	return &res, nil
}

func TestAuto_FallsBackWhenToolMissing(t *testing.T) {
	primary := &stubExtractor{name: "pdfinfo", err: ErrToolNotFound}
	fallback := &stubExtractor{name: "native", res: &Result{Stdout: []byte("Pages: 1\n"), Extractor: "native"}}

	res, err := NewAuto(primary, fallback, nil).Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "native", res.Extractor)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestAuto_OtherErrorsDoNotFallBack(t *testing.T) {
	primary := &stubExtractor{name: "pdfinfo", err: errors.New("boom")}
	fallback := &stubExtractor{name: "native", res: &Result{}}

	_, err := NewAuto(primary, fallback, nil).Extract(context.Background(), "doc.pdf")
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 0, fallback.calls)
}

func TestAuto_PrimarySucceeds(t *testing.T) {
	primary := &stubExtractor{name: "pdfinfo", res: &Result{Extractor: "pdfinfo"}}
	fallback := &stubExtractor{name: "native", res: &Result{}}

	res, err := NewAuto(primary, fallback, nil).Extract(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdfinfo", res.Extractor)
	assert.Equal(t, 0, fallback.calls)
}

func TestNew_Kinds(t *testing.T) {
	for kind, want := range map[string]string{"": "auto", "auto": "auto", "pdfinfo": "pdfinfo", "native": "native"} {
		ex, err := New(kind, CommandOptions{})
		require.NoError(t, err, "kind %q", kind)
		assert.Equal(t, want, ex.Name())
	}

	_, err := New("ghostscript", CommandOptions{})
	assert.Error(t, err)
}
