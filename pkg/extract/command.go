package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// DefaultToolName is the executable the Command extractor runs.
const DefaultToolName = "pdfinfo"

// DefaultCommandTimeout bounds a single tool invocation.
const DefaultCommandTimeout = 30 * time.Second

// CommandOptions configures a Command extractor.
type CommandOptions struct {
	// Path is an explicit tool binary. Empty means LocateTool(DefaultToolName).
	Path string

	// Args are passed before the document path.
	Args []string

	// Timeout bounds each invocation (DefaultCommandTimeout if zero).
	Timeout time.Duration

	// Logger receives debug output about invocations.
	Logger *slog.Logger
}

// Command runs an external pdfinfo-compatible tool and captures its output.
type Command struct {
	opts CommandOptions
}

// NewCommand creates a Command extractor.
func NewCommand(opts CommandOptions) *Command {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCommandTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Command{opts: opts}
}

// Name returns the extractor name.
func (c *Command) Name() string {
	return DefaultToolName
}

// Extract runs the tool against path. A non-zero exit status is not an
// error: whatever the tool printed is returned along with its error lines.
func (c *Command) Extract(ctx context.Context, path string) (*Result, error) {
	bin, err := LocateTool(DefaultToolName, c.opts.Path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	args := append(append([]string(nil), c.opts.Args...), path)
	cmd := exec.CommandContext(ctx, bin, args...) // #nosec G204 -- tool path and document path are user-provided by design
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.opts.Logger.Debug("running extraction tool", "tool", bin, "args", args)

	res := &Result{
		Source:    path,
		Extractor: c.Name(),
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("running %s: %w", bin, err)
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("running %s: %w", bin, ctx.Err())
		}
		res.ExitCode = exitErr.ExitCode()
	}

	res.Stdout = stdout.Bytes()
	res.Stderr = splitLines(stderr.Bytes())

	return res, nil
}
