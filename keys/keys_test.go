package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomtui/loom/keys"
)

func TestDecodeTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want keys.Msg
	}{
		{"enter cr", []byte{0x0D}, keys.Msg{Type: keys.Enter}},
		{"enter lf", []byte{0x0A}, keys.Msg{Type: keys.Enter}},
		{"backspace del", []byte{0x7F}, keys.Msg{Type: keys.Backspace}},
		{"tab", []byte{0x09}, keys.Msg{Type: keys.Tab}},
		{"space", []byte{0x20}, keys.Msg{Type: keys.Space}},
		{"printable a", []byte{'a'}, keys.Msg{Type: keys.Rune, Rune: 'a'}},
		{"ctrl+a", []byte{0x01}, keys.Msg{Type: keys.Rune, Rune: 'a', Ctrl: true}},
		{"ctrl+z", []byte{0x1A}, keys.Msg{Type: keys.Rune, Rune: 'z', Ctrl: true}},
		{"up", []byte{0x1B, '[', 'A'}, keys.Msg{Type: keys.Up}},
		{"down", []byte{0x1B, '[', 'B'}, keys.Msg{Type: keys.Down}},
		{"left", []byte{0x1B, '[', 'D'}, keys.Msg{Type: keys.Left}},
		{"right", []byte{0x1B, '[', 'C'}, keys.Msg{Type: keys.Right}},
		{"home alt form", []byte{0x1B, '[', 'H'}, keys.Msg{Type: keys.Home}},
		{"end alt form", []byte{0x1B, '[', 'F'}, keys.Msg{Type: keys.End}},
		{"f1", []byte{0x1B, 'O', 'P'}, keys.Msg{Type: keys.F1}},
		{"f4", []byte{0x1B, 'O', 'S'}, keys.Msg{Type: keys.F4}},
		{"home tilde", []byte{0x1B, '[', '1', '~'}, keys.Msg{Type: keys.Home}},
		{"insert", []byte{0x1B, '[', '2', '~'}, keys.Msg{Type: keys.Insert}},
		{"delete", []byte{0x1B, '[', '3', '~'}, keys.Msg{Type: keys.Delete}},
		{"end tilde", []byte{0x1B, '[', '4', '~'}, keys.Msg{Type: keys.End}},
		{"pgup", []byte{0x1B, '[', '5', '~'}, keys.Msg{Type: keys.PgUp}},
		{"pgdown", []byte{0x1B, '[', '6', '~'}, keys.Msg{Type: keys.PgDown}},
		{"f5", []byte{0x1B, '[', '1', '5', '~'}, keys.Msg{Type: keys.F5}},
		{"f12", []byte{0x1B, '[', '2', '4', '~'}, keys.Msg{Type: keys.F12}},
		{"shift+up", []byte{0x1B, '[', '1', ';', '2', 'A'}, keys.Msg{Type: keys.Up, Shift: true}},
		{"ctrl+right", []byte{0x1B, '[', '1', ';', '5', 'C'}, keys.Msg{Type: keys.Right, Ctrl: true}},
		{"shift+delete", []byte{0x1B, '[', '3', ';', '2', '~'}, keys.Msg{Type: keys.Delete, Shift: true}},
		{"bare esc", []byte{0x1B}, keys.Msg{Type: keys.Esc}},
		{"alt+a", []byte{0x1B, 'a'}, keys.Msg{Type: keys.Rune, Rune: 'a', Alt: true}},
		{"utf8 two-byte", []byte("é"), keys.Msg{Type: keys.Rune, Rune: 'é'}},
		{"utf8 three-byte", []byte("€"), keys.Msg{Type: keys.Rune, Rune: '€'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Decode(tt.in)
			require.Truef(t, ok, "Decode(%v) failed to decode", tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMsgString(t *testing.T) {
	tests := []struct {
		msg  keys.Msg
		want string
	}{
		{keys.Msg{Type: keys.Rune, Rune: 'a', Ctrl: true}, "ctrl+a"},
		{keys.Msg{Type: keys.Rune, Rune: 'x', Alt: true}, "alt+x"},
		{keys.Msg{Type: keys.Rune, Rune: 'q'}, "q"},
		{keys.Msg{Type: keys.Up}, "up"},
		{keys.Msg{Type: keys.Enter}, "enter"},
		{keys.Msg{Type: keys.Up, Shift: true}, "shift+up"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.msg.String())
	}
}
