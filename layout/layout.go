// Package layout arranges already-rendered blocks of text next to one
// another. It has no knowledge of Style; it only measures and pads
// strings, the same contract join/place have in the wider ecosystem
// (see DESIGN.md — no teacher source implements these, only consumes
// an equivalent library, so this package is authored fresh).
package layout

import (
	"strings"

	"github.com/loomtui/loom/strutil"
)

// JoinHorizontal lays out blocks left to right, padding each block's
// lines to its own max width and padding all blocks to the same
// height by inserting blank lines per pos (0.0 top-aligned, 1.0
// bottom-aligned, anything between interpolated).
func JoinHorizontal(pos float64, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}

	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	height := 0
	for i, b := range blocks {
		lines := strings.Split(b, "\n")
		split[i] = lines
		widths[i] = blockWidth(lines)
		if len(lines) > height {
			height = len(lines)
		}
	}

	for i := range split {
		split[i] = verticalPad(split[i], height, widths[i], pos)
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for i, lines := range split {
			line := lines[row]
			b.WriteString(strutil.PadRight(line, widths[i]))
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

// JoinVertical stacks blocks top to bottom, padding each block's lines
// to a common width by pos (0.0 left, 1.0 right, interpolated between).
func JoinVertical(pos float64, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}

	width := 0
	splits := make([][]string, len(blocks))
	for i, b := range blocks {
		lines := strings.Split(b, "\n")
		splits[i] = lines
		if w := blockWidth(lines); w > width {
			width = w
		}
	}

	var out []string
	for _, lines := range splits {
		for _, l := range lines {
			out = append(out, horizontalPad(l, width, pos))
		}
	}
	return strings.Join(out, "\n")
}

// Place centers (or otherwise positions, via hPos/vPos in [0,1]) block
// inside a canvas of the given width and height, filling the remainder
// with spaces.
func Place(width, height int, hPos, vPos float64, block string) string {
	lines := strings.Split(block, "\n")
	blockH := len(lines)
	blockW := blockWidth(lines)

	topPad := int(float64(height-blockH) * clamp01(vPos))
	if topPad < 0 {
		topPad = 0
	}
	bottomPad := height - blockH - topPad
	if bottomPad < 0 {
		bottomPad = 0
	}

	out := make([]string, 0, height)
	blank := strings.Repeat(" ", width)
	for i := 0; i < topPad; i++ {
		out = append(out, blank)
	}
	for _, l := range lines {
		out = append(out, horizontalPadExact(l, width, blockW, hPos))
	}
	for i := 0; i < bottomPad; i++ {
		out = append(out, blank)
	}
	for len(out) < height {
		out = append(out, blank)
	}
	return strings.Join(out[:height], "\n")
}

func blockWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if v := strutil.VisibleWidth(l); v > w {
			w = v
		}
	}
	return w
}

func verticalPad(lines []string, height, width int, pos float64) []string {
	deficit := height - len(lines)
	if deficit <= 0 {
		return lines
	}
	top := int(float64(deficit) * clamp01(pos))
	bottom := deficit - top

	blank := strings.Repeat(" ", width)
	out := make([]string, 0, height)
	for i := 0; i < top; i++ {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for i := 0; i < bottom; i++ {
		out = append(out, blank)
	}
	return out
}

func horizontalPad(l string, width int, pos float64) string {
	return horizontalPadExact(l, width, strutil.VisibleWidth(l), pos)
}

func horizontalPadExact(l string, width, lineWidth int, pos float64) string {
	deficit := width - lineWidth
	if deficit <= 0 {
		return l
	}
	left := int(float64(deficit) * clamp01(pos))
	right := deficit - left
	return strings.Repeat(" ", left) + l + strings.Repeat(" ", right)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Position constants for the common alignments, mirroring the 0.0-1.0
// fractional convention used throughout this package.
const (
	Top    = 0.0
	Bottom = 1.0
	Left   = 0.0
	Center = 0.5
	Right  = 1.0
)
