package style

// Border holds the eight glyphs used to draw a box around styled
// content: four edges and four corners. The zero value draws nothing.
type Border struct {
	Top, Bottom, Left, Right                   string
	TopLeft, TopRight, BottomLeft, BottomRight string
}

// IsZero reports whether b draws no border at all.
func (b Border) IsZero() bool {
	return b == Border{}
}

// Predefined border styles, matching the six named in the component
// design: none (the zero value, used implicitly), normal, rounded,
// thick, double and hidden. Hidden differs from none only in that a
// Style with HiddenBorder still reserves the border's width/height in
// layout even though every glyph is blank.
var (
	NormalBorder = Border{
		Top: "─", Bottom: "─", Left: "│", Right: "│",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	}

	RoundedBorder = Border{
		Top: "─", Bottom: "─", Left: "│", Right: "│",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	}

	ThickBorder = Border{
		Top: "━", Bottom: "━", Left: "┃", Right: "┃",
		TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛",
	}

	DoubleBorder = Border{
		Top: "═", Bottom: "═", Left: "║", Right: "║",
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
	}

	HiddenBorder = Border{
		Top: " ", Bottom: " ", Left: " ", Right: " ",
		TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
	}
)
