// Package style implements an immutable, chainable text-styling
// builder and its render pipeline: alignment, padding, border, margin
// and SGR color/attribute application over ANSI-aware content.
package style

import "github.com/loomtui/loom/strutil"

// Align is a horizontal alignment inside a width-constrained box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Spacing holds the four sides of a padding or margin box, CSS-shorthand
// style: Top, Right, Bottom, Left.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// Uniform returns a Spacing with all four sides set to n.
func Uniform(n int) Spacing { return Spacing{n, n, n, n} }

// Sides selects which edges of a border to draw. The zero value draws
// no edges; AllSides draws all four.
type Sides struct {
	Top, Right, Bottom, Left bool
}

// AllSides draws every edge of a border.
var AllSides = Sides{Top: true, Right: true, Bottom: true, Left: true}

// Color is a 24-bit RGB color used for foreground/background/border.
type Color struct {
	R, G, B uint8
}

// RGB constructs a Color from raw components.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// Style is an immutable description of how to render a block of text.
// Every setter returns a modified copy; the zero value adds no color,
// border or spacing and only right-pads shorter lines to the width of
// the widest one. Fields are plain values rather than pointers-to-optional
// because every field has an unambiguous "unset" zero (no border, no
// color, no size constraint) — see DESIGN.md for why this differs from
// the teacher's pointer-field approach.
type Style struct {
	fg, bg         Color
	hasFg, hasBg   bool
	bold           bool
	dim            bool
	italic         bool
	underline      bool
	reverse        bool
	strikethrough  bool
	border         Border
	hasBorder      bool
	borderSides    Sides
	hasBorderSides bool
	borderFg       Color
	hasBorderFg    bool
	padding        Spacing
	margin         Spacing
	width          int
	height         int
	maxWidth       int
	maxHeight      int
	align          Align
	wrap           bool
}

// New returns the zero Style: no color, no border, no constraints.
func New() Style { return Style{} }

func (s Style) Foreground(c Color) Style   { s.fg, s.hasFg = c, true; return s }
func (s Style) Background(c Color) Style   { s.bg, s.hasBg = c, true; return s }
func (s Style) Bold(v bool) Style          { s.bold = v; return s }
func (s Style) Dim(v bool) Style           { s.dim = v; return s }
func (s Style) Italic(v bool) Style        { s.italic = v; return s }
func (s Style) Underline(v bool) Style     { s.underline = v; return s }
func (s Style) Reverse(v bool) Style       { s.reverse = v; return s }
func (s Style) Strikethrough(v bool) Style { s.strikethrough = v; return s }

// Border sets the glyphs drawn around the content box. All four sides
// are drawn unless BorderSides is also called.
func (s Style) Border(b Border) Style { s.border, s.hasBorder = b, true; return s }

// BorderSides restricts which edges of the border are drawn, e.g.
// Sides{Top: true, Bottom: true} for a horizontal-rule-only border.
func (s Style) BorderSides(sides Sides) Style {
	s.borderSides, s.hasBorderSides = sides, true
	return s
}

func (s Style) BorderForeground(c Color) Style {
	s.borderFg, s.hasBorderFg = c, true
	return s
}

func (s Style) Padding(sp Spacing) Style { s.padding = sp; return s }
func (s Style) Margin(sp Spacing) Style  { s.margin = sp; return s }

// Width sets the total content width, measured inside the border and
// including padding: wrapping targets Width minus the horizontal
// padding, and the padded box is expanded back out to exactly Width.
func (s Style) Width(w int) Style  { s.width = w; return s }
func (s Style) Height(h int) Style { s.height = h; return s }

// MaxWidth caps the rendered content width by truncation, applied
// after wrapping/alignment regardless of Width.
func (s Style) MaxWidth(w int) Style { s.maxWidth = w; return s }

// MaxHeight caps the rendered content height by truncation, applied
// after height-padding regardless of Height.
func (s Style) MaxHeight(h int) Style { s.maxHeight = h; return s }

func (s Style) Align(a Align) Style { s.align = a; return s }

// Wrap enables word-wrapping content to Width before the rest of the
// pipeline runs. Without a Width set, Wrap has no effect.
func (s Style) Wrap(v bool) Style { s.wrap = v; return s }

// sides returns the border edges to draw: explicit BorderSides value
// if set, else all four.
func (s Style) sides() Sides {
	if s.hasBorderSides {
		return s.borderSides
	}
	return AllSides
}

// contentWidth returns the width content lines should occupy: Width
// minus horizontal padding when Width is set (so the padded, bordered
// box comes back out to exactly Width), else the content's own
// natural width.
func (s Style) contentWidth(lines []string) int {
	if s.width > 0 {
		w := s.width - s.padding.Left - s.padding.Right
		if w < 1 {
			w = 1
		}
		return w
	}
	max := 0
	for _, l := range lines {
		if w := strutil.VisibleWidth(l); w > max {
			max = w
		}
	}
	return max
}
