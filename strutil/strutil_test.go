package strutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loomtui/loom/strutil"
)

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain ascii", "hello", 5},
		{"empty", "", 0},
		{"sgr colored", "\x1b[31mred\x1b[0m", 3},
		{"wide cjk", "你好", 4},
		{"combining mark", "é", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strutil.VisibleWidth(tt.in))
		})
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b[1;31mbold red\x1b[0m plain"
	assert.Equal(t, "bold red plain", strutil.StripANSI(in))
}

func TestTruncate(t *testing.T) {
	t.Run("shorter than width is unchanged", func(t *testing.T) {
		assert.Equal(t, "hi", strutil.Truncate("hi", 10))
	})

	t.Run("cuts to exact width", func(t *testing.T) {
		got := strutil.Truncate("hello world", 5)
		assert.LessOrEqual(t, strutil.VisibleWidth(got), 5)
	})

	t.Run("closes open SGR at the cut", func(t *testing.T) {
		styled := "\x1b[31m" + strings.Repeat("x", 20) + "\x1b[0m"
		got := strutil.Truncate(styled, 5)
		assert.True(t, strings.HasSuffix(got, "\x1b[0m"), "truncated styled text must close SGR, got %q", got)
	})

	t.Run("never exceeds requested width", func(t *testing.T) {
		for n := 0; n <= 10; n++ {
			got := strutil.Truncate("the quick brown fox", n)
			assert.LessOrEqualf(t, strutil.VisibleWidth(got), n, "Truncate(_, %d)", n)
		}
	})
}

func TestWordWrap(t *testing.T) {
	t.Run("soundness: no line exceeds width", func(t *testing.T) {
		out := strutil.WordWrap("the quick brown fox jumps over the lazy dog", 10)
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, strutil.VisibleWidth(line), 10)
		}
	})

	t.Run("hard breaks a token longer than width", func(t *testing.T) {
		out := strutil.WordWrap("supercalifragilisticexpialidocious", 8)
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, strutil.VisibleWidth(line), 8)
		}
	})
}

func TestPadRight(t *testing.T) {
	t.Run("pads to requested width", func(t *testing.T) {
		assert.Equal(t, 5, strutil.VisibleWidth(strutil.PadRight("hi", 5)))
	})

	t.Run("idempotent once already wide enough", func(t *testing.T) {
		assert.Equal(t, "hello", strutil.PadRight("hello", 3))
	})
}
