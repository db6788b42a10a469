package style_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomtui/loom/style"
)

func TestRenderPlainTextUnchanged(t *testing.T) {
	assert.Equal(t, "Test", style.Render(style.New(), "Test"))
}

func TestRenderEmptyContent(t *testing.T) {
	assert.Equal(t, "", style.Render(style.New(), ""))
}

func TestRenderColorProducesSGR(t *testing.T) {
	s := style.New().Foreground(style.RGB(255, 0, 0))
	out := style.Render(s, "Red")
	assert.Contains(t, out, "\x1b[")
}

func TestRenderAttributesProduceKnownSGR(t *testing.T) {
	tests := []struct {
		name string
		s    style.Style
		want string
	}{
		{"bold", style.New().Bold(true), "\x1b[1m"},
		{"dim", style.New().Dim(true), "\x1b[2m"},
		{"italic", style.New().Italic(true), "\x1b[3m"},
		{"underline", style.New().Underline(true), "\x1b[4m"},
		{"reverse", style.New().Reverse(true), "\x1b[7m"},
		{"strikethrough", style.New().Strikethrough(true), "\x1b[9m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, style.Render(tt.s, "Test"), tt.want)
		})
	}
}

func TestRenderAllBorderStylesAreRectangular(t *testing.T) {
	borders := map[string]style.Border{
		"normal":  style.NormalBorder,
		"rounded": style.RoundedBorder,
		"thick":   style.ThickBorder,
		"double":  style.DoubleBorder,
		"hidden":  style.HiddenBorder,
	}

	for name, b := range borders {
		t.Run(name, func(t *testing.T) {
			s := style.New().Border(b)
			out := style.Render(s, "hi\nworld")
			lines := strings.Split(out, "\n")

			require.Lenf(t, lines, 4, "%s border", name) // top + 2 content + bottom

			width := visWidth(lines[0])
			for i, l := range lines {
				assert.Equalf(t, width, visWidth(l), "%s border: line %d not rectangular", name, i)
			}
		})
	}
}

func TestRenderNoneBorderHasNoExtraLines(t *testing.T) {
	s := style.New()
	out := style.Render(s, "hi\nworld")
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestRenderAlignment(t *testing.T) {
	s := style.New().Width(10).Align(style.AlignCenter)
	out := style.Render(s, "hi")
	assert.Equal(t, 10, visWidth(out))
	assert.True(t, strings.HasPrefix(out, "    "), "centered 2-char content in width 10 should have leading spaces, got %q", out)
}

func TestRenderHeightPadsAndTruncates(t *testing.T) {
	s := style.New().Height(3)
	out := style.Render(s, "only one line")
	assert.Len(t, strings.Split(out, "\n"), 3)

	out = style.Render(s, "a\nb\nc\nd")
	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestRenderImmutability(t *testing.T) {
	base := style.New().Foreground(style.RGB(255, 0, 0))
	derived := base.Bold(true)

	baseOut := style.Render(base, "x")
	derivedOut := style.Render(derived, "x")

	assert.NotContains(t, baseOut, "\x1b[1m", "deriving a new style must not mutate the original")
	assert.Contains(t, derivedOut, "\x1b[1m", "derived style should carry the added attribute")
}

func TestRenderPaddingExpandsBox(t *testing.T) {
	s := style.New().Padding(style.Spacing{Top: 1, Bottom: 1, Left: 2, Right: 2})
	out := style.Render(s, "hi")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 2+2+2, visWidth(lines[1]))
}

func TestRenderWidthIsTotalIncludingPadding(t *testing.T) {
	s := style.New().Width(10).Padding(style.Spacing{Left: 2, Right: 2})
	out := style.Render(s, "hi")
	assert.Equal(t, 10, visWidth(out), "Width(10) with padding should total 10 columns")
}

func TestRenderMaxWidthTruncates(t *testing.T) {
	s := style.New().MaxWidth(5)
	out := style.Render(s, "a very long line")
	assert.LessOrEqual(t, visWidth(out), 5)
}

func TestRenderMaxHeightTruncates(t *testing.T) {
	s := style.New().MaxHeight(2)
	out := style.Render(s, "one\ntwo\nthree\nfour")
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestRenderBorderSidesSubset(t *testing.T) {
	s := style.New().Border(style.NormalBorder).BorderSides(style.Sides{Top: true, Bottom: true})
	out := style.Render(s, "hi")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, lines[1], style.NormalBorder.Left, "content line should have no left border column")
}

func visWidth(s string) int {
	// Local, ANSI-naive width check is sufficient here: these fixtures
	// only ever carry SGR sequences or plain box-drawing glyphs, and
	// the style package itself is what strutil.VisibleWidth exists to
	// test against in strutil's own suite.
	stripped := stripSGR(s)
	return len([]rune(stripped))
}

func stripSGR(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
