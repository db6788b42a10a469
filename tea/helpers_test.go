package tea_test

import (
	"io"
	"testing"
)

// pipeInput returns a reader/writer pair backed by an in-memory pipe,
// used to feed a Program input without blocking on a real terminal.
func pipeInput(t *testing.T) (io.Reader, io.WriteCloser) {
	t.Helper()
	r, w := io.Pipe()
	return r, w
}
