//go:build !windows

package shell

import (
	"fmt"
	"runtime"
)

// New opens the platform shell backend. There is none outside Windows; use
// NewFake for dry runs and tests.
func New() (Shell, error) {
	return nil, fmt.Errorf("no platform shell backend on %s", runtime.GOOS)
}
