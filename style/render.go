package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/loomtui/loom/strutil"
)

// Render runs content through the pipeline: wrap, align, height-pad,
// max-width/max-height truncation, truncate-to-width, pad-to-width,
// SGR-wrap each line (so a background color fills the full content
// width, the way a header bar is expected to look), box padding,
// border, margin. Grounded on the teacher's RenderCommand.Execute
// ordering (style/application/command/render.go).
func Render(s Style, content string) string {
	lines := strings.Split(content, "\n")

	width := s.contentWidth(lines)

	if s.wrap && s.width > 0 {
		content = strutil.WordWrap(content, width)
		lines = strings.Split(content, "\n")
	}

	lines = alignLines(lines, width, s.align)

	if s.height > 0 {
		lines = padHeight(lines, s.height, width)
	}

	if s.maxWidth > 0 && width > s.maxWidth {
		width = s.maxWidth
	}
	if s.maxHeight > 0 && len(lines) > s.maxHeight {
		lines = lines[:s.maxHeight]
	}

	for i, l := range lines {
		lines[i] = strutil.Truncate(l, width)
	}

	for i, l := range lines {
		lines[i] = strutil.PadRight(l, width)
	}

	for i, l := range lines {
		lines[i] = applyAttributes(s, l)
	}

	lines, width = applyPadding(s, lines, width)

	if s.hasBorder && !s.border.IsZero() {
		lines = applyBorder(s, lines, width)
	}

	lines = applyMargin(s, lines)

	return strings.Join(lines, "\n")
}

func alignLines(lines []string, width int, align Align) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		pad := width - strutil.VisibleWidth(l)
		if pad <= 0 {
			out[i] = l
			continue
		}
		switch align {
		case AlignCenter:
			left := pad / 2
			right := pad - left
			out[i] = strings.Repeat(" ", left) + l + strings.Repeat(" ", right)
		case AlignRight:
			out[i] = strings.Repeat(" ", pad) + l
		default:
			out[i] = l
		}
	}
	return out
}

func padHeight(lines []string, height, width int) []string {
	if len(lines) >= height {
		return lines[:height]
	}
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return lines
}

func applyAttributes(s Style, line string) string {
	if !s.hasFg && !s.hasBg && !s.bold && !s.dim && !s.italic && !s.underline &&
		!s.reverse && !s.strikethrough {
		return line
	}
	t := termenv.String(line)
	if s.hasFg {
		t = t.Foreground(termenv.RGBColor(hex(s.fg)))
	}
	if s.hasBg {
		t = t.Background(termenv.RGBColor(hex(s.bg)))
	}
	if s.bold {
		t = t.Bold()
	}
	if s.dim {
		t = t.Faint()
	}
	if s.italic {
		t = t.Italic()
	}
	if s.underline {
		t = t.Underline()
	}
	if s.reverse {
		t = t.Reverse()
	}
	if s.strikethrough {
		t = t.CrossOut()
	}
	return t.String()
}

func hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// applyPadding surrounds lines with the style's padding box, returning
// the new lines and the content width including that padding.
func applyPadding(s Style, lines []string, width int) ([]string, int) {
	p := s.padding
	if p == (Spacing{}) {
		return lines, width
	}

	newWidth := width + p.Left + p.Right
	out := make([]string, 0, len(lines)+p.Top+p.Bottom)

	blank := strings.Repeat(" ", newWidth)
	for i := 0; i < p.Top; i++ {
		out = append(out, blank)
	}
	left := strings.Repeat(" ", p.Left)
	right := strings.Repeat(" ", p.Right)
	for _, l := range lines {
		out = append(out, left+l+right)
	}
	for i := 0; i < p.Bottom; i++ {
		out = append(out, blank)
	}

	return out, newWidth
}

// applyBorder wraps lines with the style's border glyphs, drawing only
// the edges named by s.sides() — e.g. Sides{Top, Bottom} for a
// horizontal-rule-only border with no side columns.
func applyBorder(s Style, lines []string, width int) []string {
	b := s.border
	sides := s.sides()
	edgeColor := func(glyph string) string {
		if !s.hasBorderFg || glyph == "" {
			return glyph
		}
		return termenv.String(glyph).Foreground(termenv.RGBColor(hex(s.borderFg))).String()
	}

	leftCorner := func(corner string) string {
		if sides.Left {
			return corner
		}
		return ""
	}
	rightCorner := func(corner string) string {
		if sides.Right {
			return corner
		}
		return ""
	}

	out := make([]string, 0, len(lines)+2)
	if sides.Top {
		top := leftCorner(b.TopLeft) + strings.Repeat(b.Top, width) + rightCorner(b.TopRight)
		out = append(out, edgeColor(top))
	}
	for _, l := range lines {
		left, right := "", ""
		if sides.Left {
			left = edgeColor(b.Left)
		}
		if sides.Right {
			right = edgeColor(b.Right)
		}
		out = append(out, left+l+right)
	}
	if sides.Bottom {
		bottom := leftCorner(b.BottomLeft) + strings.Repeat(b.Bottom, width) + rightCorner(b.BottomRight)
		out = append(out, edgeColor(bottom))
	}
	return out
}

func applyMargin(s Style, lines []string) []string {
	m := s.margin
	width := 0
	for _, l := range lines {
		if w := strutil.VisibleWidth(l); w > width {
			width = w
		}
	}

	for i, l := range lines {
		lines[i] = strings.Repeat(" ", m.Left) + l + strings.Repeat(" ", m.Right)
	}

	blank := strings.Repeat(" ", m.Left+width+m.Right)
	top := make([]string, m.Top)
	bottom := make([]string, m.Bottom)
	for i := range top {
		top[i] = blank
	}
	for i := range bottom {
		bottom[i] = blank
	}

	return append(append(top, lines...), bottom...)
}
