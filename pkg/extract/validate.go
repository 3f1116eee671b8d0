package extract

import (
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// Validator checks the structure of a PDF file. Failures are reported the
// way pdfinfo reports syntax problems: as error lines next to the report.
type Validator struct {
	conf *model.Configuration
}

// NewValidator creates a validator using relaxed validation, which accepts
// the common structural defects most readers tolerate.
func NewValidator() *Validator {
	// pdfcpu otherwise installs a config directory under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Validator{conf: conf}
}

// Validate returns an error describing the first structural problem found.
func (v *Validator) Validate(path string) error {
	if err := api.ValidateFile(path, v.conf); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	return nil
}
