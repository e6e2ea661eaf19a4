package term

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen() (*Screen, *bytes.Buffer) {
	color.NoColor = false
	var buf bytes.Buffer
	return NewScreen(&buf), &buf
}

func TestMoveToAndText(t *testing.T) {
	s, buf := newTestScreen()
	s.MoveTo(5, 7)
	s.Text("hi")
	require.NoError(t, s.Flush())
	assert.Equal(t, "\x1b[5;7fhi", buf.String())
}

func TestSpan(t *testing.T) {
	s, buf := newTestScreen()
	s.Span(3, 41)
	require.NoError(t, s.Flush())
	assert.Equal(t, "\x1b[41m   \x1b[0m", buf.String())
}

func TestTextColor(t *testing.T) {
	s, buf := newTestScreen()
	s.TextColor("GO", 31, 40, true)
	require.NoError(t, s.Flush())
	assert.Equal(t, "\x1b[31;40;1mGO\x1b[0m", buf.String())
}

func TestClearAndCursor(t *testing.T) {
	s, buf := newTestScreen()
	s.Clear()
	s.HideCursor()
	s.ShowCursor()
	require.NoError(t, s.Flush())
	assert.Equal(t, "\x1b[2J\x1b[?25l\x1b[?25h", buf.String())
}

func TestFlushResetsBuffer(t *testing.T) {
	s, buf := newTestScreen()
	s.Text("frame one")
	require.NoError(t, s.Flush())
	buf.Reset()

	s.Text("frame two")
	require.NoError(t, s.Flush())
	assert.Equal(t, "frame two", buf.String())
}
