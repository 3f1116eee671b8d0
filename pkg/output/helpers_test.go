package output

import (
	"testing"

	"github.com/ccollicutt/pdfmeta/pkg/extract"
	"github.com/ccollicutt/pdfmeta/pkg/pdfinfo"
)

const annualReport = `Title:          Annual Report 2019
Author:         Jane Doe
Pages:          12
Encrypted:      no
CreationDate:   Thu Mar  7 10:21:33 2019 UTC
`

func createTestDocument(t *testing.T) *Document {
	t.Helper()
	p := pdfinfo.New("reports/annual_report.pdf", annualReport,
		[]string{"Syntax Error: Missing 'endstream'", "Syntax Error: Missing 'endstream'"})
	return NewDocument(p, &extract.Result{Extractor: "pdfinfo"}, "")
}

func createUntitledDocument(t *testing.T) *Document {
	t.Helper()
	p := pdfinfo.New("scans/field_notes.pdf", "Pages:          3\nEncrypted:      no\n", nil)
	return NewDocument(p, nil, "")
}
