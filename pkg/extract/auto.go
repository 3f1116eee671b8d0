package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Extractor names accepted by New.
const (
	KindAuto    = "auto"
	KindPdfinfo = "pdfinfo"
	KindNative  = "native"
)

// Auto prefers the external tool and falls back to the native extractor
// when the tool is not installed.
type Auto struct {
	primary  Extractor
	fallback Extractor
	logger   *slog.Logger
}

// NewAuto creates an Auto extractor.
func NewAuto(primary, fallback Extractor, logger *slog.Logger) *Auto {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Auto{primary: primary, fallback: fallback, logger: logger}
}

// Name returns the extractor name.
func (a *Auto) Name() string {
	return KindAuto
}

// Extract runs the primary extractor, or the fallback if the primary's
// tool cannot be found. An explicitly configured tool that is unusable is
// reported rather than replaced.
func (a *Auto) Extract(ctx context.Context, path string) (*Result, error) {
	res, err := a.primary.Extract(ctx, path)
	if err == nil || !errors.Is(err, ErrToolNotFound) {
		return res, err
	}

	a.logger.Debug("extraction tool unavailable, using fallback",
		"primary", a.primary.Name(),
		"fallback", a.fallback.Name(),
		"error", err)

	return a.fallback.Extract(ctx, path)
}

// New builds the extractor for kind (auto, pdfinfo or native).
func New(kind string, opts CommandOptions) (Extractor, error) {
	switch kind {
	case KindPdfinfo:
		return NewCommand(opts), nil
	case KindNative:
		return NewNative(NewValidator()), nil
	case KindAuto, "":
		return NewAuto(NewCommand(opts), NewNative(NewValidator()), opts.Logger), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (use auto, pdfinfo or native)", kind)
	}
}
