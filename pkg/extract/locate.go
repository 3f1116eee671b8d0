package extract

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

var (
	// ErrToolNotFound is returned when no extraction tool binary can be located.
	ErrToolNotFound = errors.New("extraction tool not found")

	// ErrToolNotExecutable is returned when an explicitly configured tool
	// path does not name an executable file.
	ErrToolNotExecutable = errors.New("extraction tool not executable")
)

// ToolDir is the per-user directory searched for tool binaries, relative to
// the home directory.
const ToolDir = ".pdfmeta/bin"

// LocateTool finds the binary for an extraction tool. An explicit path is
// used as given and must be executable; it is never searched for. Otherwise it searches, in order:
//  1. The directory of the running pdfmeta binary
//  2. ~/.pdfmeta/bin/
//  3. Anywhere in PATH
func LocateTool(name, explicit string) (string, error) {
	if explicit != "" {
		if isExecutable(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: %s", ErrToolNotExecutable, explicit)
	}

	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(homeDir, ToolDir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
}

// isExecutable checks if a file exists and has an execute bit set.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}
