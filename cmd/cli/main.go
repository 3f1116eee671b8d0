// pdfmeta - PDF Metadata Reader
//
// pdfmeta reads the metadata of PDF documents through pdfinfo (or a
// built-in reader) and reports it as typed values.
package main

import (
	"os"

	"github.com/ccollicutt/pdfmeta/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
