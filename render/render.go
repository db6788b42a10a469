// Package render implements the line-diff frame renderer: given a
// frame's lines, it writes only the lines that changed since the
// previous frame, using absolute cursor addressing rather than
// relative cursor movement.
package render

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/loomtui/loom/strutil"
	"github.com/loomtui/loom/terminal"
)

// Renderer tracks the previously drawn frame and emits a minimal diff
// against each new one. Grounded on the teacher's
// tea/internal/infrastructure/renderer/inline.go (split-on-newline,
// per-line truncate, skip-if-unchanged, erase-to-end on shrink), but
// adapted from its relative cursor-up bookkeeping to absolute
// "\x1b[<row>;<col>H" addressing, since a program that owns the full
// screen (altscreen or otherwise homed) can always address a row
// directly instead of walking there from wherever the cursor happens
// to be.
type Renderer struct {
	out    io.Writer
	mu     sync.Mutex
	width  int
	height int

	lastLines []string
}

// New creates a Renderer writing to out with no previous frame, so the
// next Render always does a full repaint.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Resize updates the drawable area and forces the next Render to
// rewrite every line, since the previous frame may no longer fit.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.lastLines = nil
}

// Reset discards the cached previous frame without changing dimensions,
// forcing a full repaint on the next Render. It writes nothing itself.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLines = nil
}

// Render draws view, a "\n"-joined frame, writing only the lines that
// differ from the previous call. Lines beyond height are dropped;
// lines wider than width are truncated. If the new frame has fewer
// lines than the last one, the leftover rows are erased.
func (r *Renderer) Render(view string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := strings.Split(view, "\n")
	if r.height > 0 && len(lines) > r.height {
		lines = lines[:r.height]
	}
	if r.width > 0 {
		for i, l := range lines {
			lines[i] = strutil.Truncate(l, r.width)
		}
	}

	var buf bytes.Buffer
	for i, l := range lines {
		if i < len(r.lastLines) && r.lastLines[i] == l {
			continue
		}
		buf.WriteString(terminal.CursorPosition(i, 0))
		buf.WriteString(terminal.EraseLine())
		buf.WriteString(l)
	}
	for i := len(lines); i < len(r.lastLines); i++ {
		buf.WriteString(terminal.CursorPosition(i, 0))
		buf.WriteString(terminal.EraseLine())
	}

	if buf.Len() == 0 {
		return nil
	}

	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return err
	}
	r.lastLines = lines
	return nil
}
