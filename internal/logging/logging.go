// Package logging provides the debug logger used internally by the tea
// event loop. A running program owns the terminal screen, so nothing in
// this package ever writes to stdout or stderr by default.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Discard is a logger that drops every entry. It is the default used by
// tea.Program until a caller supplies one via tea.WithLogger.
var Discard = log.NewWithOptions(io.Discard, log.Options{})

// New creates a logger writing structured entries to w, suitable for a
// file opened with tea.WithLogger. Timestamps and the "loom" prefix are
// enabled so a log tailed during development reads the same as a server
// log would.
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "loom",
	})
}
