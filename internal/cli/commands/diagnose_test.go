package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/pdfmeta/pkg/config"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDiagnoseCommand(t *testing.T) {
	cmd := NewDiagnoseCommand(&GlobalOptions{})

	assert.Equal(t, "diagnose <file|glob>...", cmd.Use)
	for _, flag := range []string{"verbose", "color", "extractor", "pdfinfo"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestDiagnose_MissingFile(t *testing.T) {
	bin := writeFakePdfinfo(t)

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{}),
		"--extractor", "pdfinfo", "--pdfinfo", bin, "--color", "never",
		filepath.Join(t.TempDir(), "missing.pdf"))
	require.NoError(t, err)

	assert.Contains(t, out, "[PASS] pdfinfo\n    Found "+bin)
	assert.Contains(t, out, "[FAIL] Document:")
	assert.Contains(t, out, "File not found")
	assert.Contains(t, out, "Summary: 2 passed, 0 warnings, 1 errors")
	assert.Equal(t, 1, ExitCode)
}

func TestDiagnose_NotAPDF(t *testing.T) {
	bin := writeFakePdfinfo(t)
	doc := writeDoc(t, t.TempDir(), "notes.pdf", "just some text\n")

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{}),
		"--extractor", "pdfinfo", "--pdfinfo", bin, "--color", "never", doc)
	require.NoError(t, err)

	assert.Contains(t, out, "Missing %PDF- header")
	assert.Equal(t, 1, ExitCode)
}

func TestDiagnose_ExtractionErrors(t *testing.T) {
	bin := writeFakePdfinfo(t)
	doc := writeDoc(t, t.TempDir(), "broken.pdf", "%PDF-1.4\ngarbage\n")

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{}),
		"--extractor", "pdfinfo", "--pdfinfo", bin, "--color", "never", doc)
	require.NoError(t, err)

	assert.Contains(t, out, "[PASS] Document: "+doc+"\n    Header %PDF-1.4")
	assert.Contains(t, out, "[WARN] Structure: "+doc)
	assert.Contains(t, out, "[WARN] Metadata: "+doc+"\n    1 field(s) via pdfinfo")
	assert.Contains(t, out, "      - Syntax Error: Couldn't read xref table\n")
	assert.Contains(t, out, "0 errors")
	assert.Equal(t, 0, ExitCode)
}

func TestDiagnose_UnrecognisedDate(t *testing.T) {
	bin := writeFakePdfinfo(t)
	doc := writeDoc(t, t.TempDir(), "odd.pdf", "%PDF-1.7\n")

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{}),
		"--extractor", "pdfinfo", "--pdfinfo", bin, "--color", "never", doc)
	require.NoError(t, err)

	assert.Contains(t, out, `CreationDate not recognised as a date: "unknown"`)
}

func TestDiagnose_ToolMissing(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "annual.pdf", "%PDF-1.4\n")

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{}),
		"--extractor", "pdfinfo", "--pdfinfo", filepath.Join(dir, "no-such-pdfinfo"), "--color", "never", doc)
	require.NoError(t, err)

	assert.Contains(t, out, "[FAIL] pdfinfo")
	assert.Contains(t, out, "Hint: Or use --extractor native")
	assert.Equal(t, 1, ExitCode)
}

func TestDiagnose_AutoWithUnusableExplicitTool(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "annual.pdf", "%PDF-1.4\n")

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{}),
		"--extractor", "auto", "--pdfinfo", filepath.Join(dir, "no-such-pdfinfo"), "--color", "never", doc)
	require.NoError(t, err)

	assert.Contains(t, out, "[FAIL] pdfinfo")
	assert.NotContains(t, out, "the native extractor will be used")
	assert.Equal(t, 1, ExitCode)
}

func TestDiagnose_NativeSkipsToolCheck(t *testing.T) {
	doc := writeDoc(t, t.TempDir(), "notes.pdf", "plain text")

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{}),
		"--extractor", "native", "--color", "never", doc)
	require.NoError(t, err)

	assert.Contains(t, out, "[PASS] pdfinfo\n    Not used (native extractor selected)")
}

func TestDiagnose_BadConfig(t *testing.T) {
	cfgPath := writeDoc(t, t.TempDir(), "pdfmeta.yaml", "extractor: ghostscript\n")

	out, err := execute(t, NewDiagnoseCommand(&GlobalOptions{ConfigPath: cfgPath}), "--color", "never", "doc.pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "=== pdfmeta Diagnostics ===\n"))
	assert.Contains(t, out, "[FAIL] Configuration")
	assert.Contains(t, out, "Summary: 0 passed, 0 warnings, 1 errors")
	assert.Equal(t, 1, ExitCode)
}

func TestCheckWebhooks(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Empty(t, checkWebhooks(cfg, &DiagnoseOptions{}))

	cfg.Webhooks = []config.WebhookConfig{
		{Name: "secure", URL: "https://example.com/hook", Token: "t", Trigger: config.WebhookTriggerAlways},
		{Name: "plain", URL: "http://example.com/hook", Trigger: config.WebhookTriggerOnErrors},
	}
	results := checkWebhooks(cfg, &DiagnoseOptions{})
	require.Len(t, results, 2)
	assert.Equal(t, "ok", results[0].Status)
	assert.Equal(t, "Trigger: always", results[0].Message)
	assert.Equal(t, "warning", results[1].Status)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
