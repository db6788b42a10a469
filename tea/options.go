package tea

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a Program at creation time. Grounded on the
// teacher's tea/internal/application/program/options.go functional
// options pattern.
type Option[T any] func(*Program[T])

// WithInput sets the input stream read for key events (default os.Stdin).
func WithInput[T any](r io.Reader) Option[T] {
	return func(p *Program[T]) { p.input = r }
}

// WithOutput sets the stream the renderer writes to (default os.Stdout).
func WithOutput[T any](w io.Writer) Option[T] {
	return func(p *Program[T]) { p.output = w }
}

// WithAltScreen runs the program in the terminal's alternate screen
// buffer, restoring the prior screen contents on exit.
func WithAltScreen[T any]() Option[T] {
	return func(p *Program[T]) { p.altScreen = true }
}

// WithEscTimeout overrides the default ~50ms ESC-disambiguation
// window used to tell a lone Escape keypress from the start of an
// escape sequence or Alt+key chord.
func WithEscTimeout[T any](d time.Duration) Option[T] {
	return func(p *Program[T]) { p.escTimeout = d }
}

// WithLogger sets the logger used for debug entries (default: discard).
func WithLogger[T any](l *log.Logger) Option[T] {
	return func(p *Program[T]) { p.logger = l }
}
