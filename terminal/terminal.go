// Package terminal owns raw-mode state, alternate-screen entry/exit,
// cursor visibility and size/resize detection for a single controlling
// terminal. It is the only package allowed to touch file-descriptor
// mode bits; everything above it works with io.Reader/io.Writer.
package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"
)

const (
	altScreenEnter = "\x1b[?1049h"
	altScreenExit  = "\x1b[?1049l"
	cursorHide     = "\x1b[?25l"
	cursorShow     = "\x1b[?25h"
	eraseLine      = "\x1b[2K"
	eraseScreen    = "\x1b[2J\x1b[H"
)

// CursorPosition writes an absolute cursor move, 1-indexed as the
// terminal expects (row 0, col 0 in API terms is "\x1b[1;1H").
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)
}

// EraseLine clears the current line without moving the cursor.
func EraseLine() string { return eraseLine }

// Terminal manages raw-mode state and queries for a single fd-backed
// output stream. A zero Terminal is not usable; construct with New.
type Terminal struct {
	out   *os.File
	state *term.State
}

// New wraps out (typically os.Stdout) for raw-mode and size control.
// If out is not a file backed by a terminal, Size falls back to 80x24
// and EnterRaw returns the wrapped error from x/term.
func New(out *os.File) *Terminal {
	return &Terminal{out: out}
}

// EnterRaw puts the terminal into raw mode, disabling line buffering
// and echo. The returned error wraps the triggering term error; callers
// should treat it as non-fatal and continue (tests commonly run with a
// non-tty output where raw mode is simply unavailable).
func (t *Terminal) EnterRaw() error {
	fd := int(t.out.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("terminal: enter raw mode: %w", err)
	}
	t.state = state
	return nil
}

// ExitRaw restores the terminal mode captured by EnterRaw. It is a
// no-op if EnterRaw was never called or failed.
func (t *Terminal) ExitRaw() error {
	if t.state == nil {
		return nil
	}
	fd := int(t.out.Fd())
	err := term.Restore(fd, t.state)
	t.state = nil
	return err
}

// Size returns the current terminal dimensions in columns, rows.
// On failure it falls back to 80x24, the same default the rest of the
// ecosystem uses for a non-tty or unavailable ioctl.
func (t *Terminal) Size() (width, height int) {
	fd := int(t.out.Fd())
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

// EnterAltScreen switches to the terminal's alternate screen buffer.
func (t *Terminal) EnterAltScreen() {
	io.WriteString(t.out, altScreenEnter)
}

// ExitAltScreen restores the primary screen buffer.
func (t *Terminal) ExitAltScreen() {
	io.WriteString(t.out, altScreenExit)
}

// HideCursor hides the terminal cursor.
func (t *Terminal) HideCursor() {
	io.WriteString(t.out, cursorHide)
}

// ShowCursor restores cursor visibility.
func (t *Terminal) ShowCursor() {
	io.WriteString(t.out, cursorShow)
}

// ClearScreen erases the full screen and homes the cursor, used on
// alt-screen entry.
func (t *Terminal) ClearScreen() {
	io.WriteString(t.out, eraseScreen)
}

// ListenForResize registers for SIGWINCH and returns a channel that
// receives the new (width, height) each time the terminal is resized,
// plus a stop function that unregisters the signal and ends the
// listening goroutine; the sizes channel is never closed. The teacher's program loop never subscribed to resize
// signals at all, querying size exactly once at startup; this fills
// that gap with the standard os/signal + SIGWINCH facility, since no
// library in the ecosystem substitutes for a kernel signal subscription.
func (t *Terminal) ListenForResize() (sizes <-chan [2]int, stop func()) {
	sigCh := make(chan os.Signal, 1)
	notifySIGWINCH(sigCh)

	out := make(chan [2]int, 1)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case _, ok := <-sigCh:
				if !ok {
					return
				}
				w, h := t.Size()
				select {
				case out <- [2]int{w, h}:
				default:
					// Drain the stale pending size and replace it so a
					// consumer lagging a frame always sees the latest
					// dimensions rather than an intermediate one.
					select {
					case <-out:
					default:
					}
					out <- [2]int{w, h}
				}
			}
		}
	}()

	stop = func() {
		signal.Stop(sigCh)
		close(done)
	}
	return out, stop
}
