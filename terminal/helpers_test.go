package terminal_test

import (
	"os"
	"testing"
)

// newNonTTYFile returns a plain regular file, used to exercise the
// non-terminal fallback paths without requiring a real pty in CI.
func newNonTTYFile(t *testing.T) (*os.File, error) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "loom-terminal-test")
	if err != nil {
		return nil, err
	}
	return f, nil
}
