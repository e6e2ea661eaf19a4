package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeArrows(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
	}{
		{"up", "\x1b[A", KeyUp},
		{"down", "\x1b[B", KeyDown},
		{"right", "\x1b[C", KeyRight},
		{"left", "\x1b[D", KeyLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, keys := Decode([]rune(tt.in))
			assert.Equal(t, Commands{}, cmds)
			assert.Equal(t, []Key{tt.want}, keys)
		})
	}
}

func TestDecodeCommands(t *testing.T) {
	cmds, keys := Decode([]rune("q"))
	assert.True(t, cmds.Quit)
	assert.Empty(t, keys)

	cmds, keys = Decode([]rune("p"))
	assert.True(t, cmds.Pause)
	assert.Empty(t, keys)

	cmds, keys = Decode([]rune(" "))
	assert.False(t, cmds.Quit)
	assert.Equal(t, []Key{KeySpace}, keys)
}

func TestDecodeLoneEscapeQuits(t *testing.T) {
	cmds, keys := Decode([]rune{0x1b})
	assert.True(t, cmds.Quit)
	assert.Empty(t, keys)

	// ESC followed by something other than '[' is still quit
	cmds, _ = Decode([]rune("\x1bx"))
	assert.True(t, cmds.Quit)
}

func TestDecodeBatchKeepsOrder(t *testing.T) {
	cmds, keys := Decode([]rune("\x1b[D \x1b[C"))
	assert.Equal(t, Commands{}, cmds)
	assert.Equal(t, []Key{KeyLeft, KeySpace, KeyRight}, keys)
}

func TestDecodeMixedCommandsAndKeys(t *testing.T) {
	cmds, keys := Decode([]rune("p\x1b[B"))
	assert.True(t, cmds.Pause)
	assert.False(t, cmds.Quit)
	assert.Equal(t, []Key{KeyDown}, keys)
}

func TestDecodeIgnoresGarbage(t *testing.T) {
	cmds, keys := Decode([]rune("xyz!7"))
	assert.Equal(t, Commands{}, cmds)
	assert.Empty(t, keys)

	// unknown escape final byte is skipped, not fatal
	cmds, keys = Decode([]rune("\x1b[Z"))
	assert.Equal(t, Commands{}, cmds)
	assert.Empty(t, keys)
}

func TestDecodeEmpty(t *testing.T) {
	cmds, keys := Decode(nil)
	assert.Equal(t, Commands{}, cmds)
	assert.Empty(t, keys)
}

func TestPartialEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"plain", "abc", 0},
		{"trailing esc", "ab\x1b", 1},
		{"trailing esc bracket", "ab\x1b[", 2},
		{"complete arrow", "\x1b[A", 0},
		{"bracket only", "[", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, partialEscape([]rune(tt.in)))
		})
	}
}
