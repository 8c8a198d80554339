package workdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnresolved indicates the running executable's location could not be
// determined, so relative data paths have nothing to anchor to.
var ErrUnresolved = errors.New("workdir: cannot resolve executable directory")

// Resolve returns the absolute directory containing the running executable,
// with symlinks evaluated. Anchoring data paths here keeps the tool's
// behavior independent of the directory it is invoked from.
func Resolve() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolved, err)
	}

	real, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolved, err)
	}

	return filepath.Dir(real), nil
}
