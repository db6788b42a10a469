// Package strutil provides ANSI-aware string measurement and shaping:
// visible width, stripping, truncation, word-wrap and right-padding in
// the presence of embedded CSI/OSC/SGR escape sequences and East-Asian
// wide / zero-width code points.
//
// All functions treat escape sequences as zero-width and pass them
// through output unchanged; width is always computed on the printable
// content only.
package strutil

import (
	"regexp"

	"github.com/acarl005/stripansi"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// VisibleWidth returns the number of terminal columns s occupies,
// ignoring escape sequences and counting East-Asian wide / emoji
// code points as 2, combining marks, zero-width joiners and control
// characters as 0, and everything else as 1. Tabs are control
// characters here and count as 0 columns; they are not expanded.
func VisibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// StripANSI returns s with all CSI/OSC/SGR escape sequences removed.
func StripANSI(s string) string {
	return stripansi.Strip(s)
}

// sgrSeq matches a single SGR (Select Graphic Rendition) sequence,
// e.g. "\x1b[1m" or "\x1b[38;2;255;0;0m".
var sgrSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

// reset is the sequence that clears all active SGR attributes.
const reset = "\x1b[0m"

// Truncate returns the longest prefix of s whose VisibleWidth is at
// most n. Escape sequences within the elided suffix are discarded; if
// any SGR attribute was left open at the cut point, a reset sequence is
// appended so style does not bleed into whatever follows.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if VisibleWidth(s) <= n {
		return s
	}
	cut := truncate.String(s, uint(n))
	if hasOpenSGR(cut) {
		cut += reset
	}
	return cut
}

// hasOpenSGR reports whether the last SGR sequence in s is something
// other than a full reset, meaning an attribute is still active at the
// end of s.
func hasOpenSGR(s string) bool {
	matches := sgrSeq.FindAllString(s, -1)
	if len(matches) == 0 {
		return false
	}
	last := matches[len(matches)-1]
	return last != reset && last != "\x1b[m"
}

// WordWrap greedily wraps s at ASCII whitespace so that every resulting
// line has VisibleWidth <= width. A token longer than width on its own
// is hard-broken at exactly width columns. Existing newlines in s force
// a break at that point. Escape sequences are preserved at their
// logical position in the output.
func WordWrap(s string, width int) string {
	if width < 1 {
		width = 1
	}
	return wrap.String(wordwrap.String(s, width), width)
}

// PadRight appends spaces to s until its VisibleWidth is n. If s is
// already at least that wide, it is returned unchanged.
func PadRight(s string, n int) string {
	if VisibleWidth(s) >= n {
		return s
	}
	return padding.String(s, uint(n))
}
