package tea

import "errors"

// Sentinel errors for the failure kinds of a program. Grounded on real
// bubbletea's ErrProgramPanic/ErrProgramKilled/ErrInterrupted pattern
// (other_examples charmbracelet-bubbletea tea.go). Of these, Run
// returns only ErrModelPanic, wrapped with fmt.Errorf("%w: ...") so
// callers can errors.Is against it regardless of the panic value.
var (
	// ErrTerminalUnavailable names a raw-mode or size-query failure
	// against the configured output. Run does not return it: a raw-mode
	// failure is logged and Run continues, and a failed size query falls
	// back to 80x24.
	ErrTerminalUnavailable = errors.New("tea: terminal unavailable")

	// ErrIOFailure names a failed read from input or write to output.
	// Run does not return it: a failed key read ends key delivery and a
	// failed render write is logged.
	ErrIOFailure = errors.New("tea: i/o failure")

	// ErrModelPanic means Init, Update or View panicked. Run recovers
	// the panic, runs teardown, and returns this wrapped with the
	// recovered value.
	ErrModelPanic = errors.New("tea: model panicked")

	// ErrCommandFailure is not returned by Run: a Cmd that needs to
	// report failure does so by returning an ErrMsg, handled by
	// Update like any other message.
	ErrCommandFailure = errors.New("tea: command failed")

	// ErrParserOverflow means the key parser could not make sense of
	// an escape sequence. It is recovered locally by the parser
	// (decoded as an Unknown key) and never surfaces from Run.
	ErrParserOverflow = errors.New("tea: unrecognized escape sequence")
)

// ErrMsg wraps a non-fatal error from a Cmd so Update can react to
// command failures without the program itself exiting.
type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

func (e ErrMsg) Unwrap() error { return e.Err }
