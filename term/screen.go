// Package term writes cursor-addressed, colored spans to a terminal. A frame
// is accumulated into one buffer and flushed with a single write.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Default SGR foreground/background attributes.
const (
	DefaultFg = 39
	DefaultBg = 49
)

type styleKey struct {
	fg, bg int
	bold   bool
}

// Screen accumulates escape sequences and text for one frame.
type Screen struct {
	out    io.Writer
	buf    strings.Builder
	spans  map[int]*color.Color
	styles map[styleKey]*color.Color
}

// NewScreen returns a Screen writing flushed frames to out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{
		out:    out,
		spans:  make(map[int]*color.Color),
		styles: make(map[styleKey]*color.Color),
	}
}

// Clear erases the whole terminal.
func (s *Screen) Clear() {
	s.buf.WriteString("\x1b[2J")
}

// MoveTo positions the cursor at 1-based terminal coordinates.
func (s *Screen) MoveTo(row, col int) {
	fmt.Fprintf(&s.buf, "\x1b[%d;%df", row, col)
}

// Span paints width cells with the given SGR background attribute.
func (s *Screen) Span(width, colorTag int) {
	c, ok := s.spans[colorTag]
	if !ok {
		c = color.New(color.Attribute(colorTag))
		s.spans[colorTag] = c
	}
	s.buf.WriteString(c.Sprint(strings.Repeat(" ", width)))
}

// Text writes text with the terminal's current attributes.
func (s *Screen) Text(text string) {
	s.buf.WriteString(text)
}

// TextColor writes text with explicit foreground/background attributes.
func (s *Screen) TextColor(text string, fg, bg int, bold bool) {
	key := styleKey{fg: fg, bg: bg, bold: bold}
	c, ok := s.styles[key]
	if !ok {
		attrs := []color.Attribute{color.Attribute(fg), color.Attribute(bg)}
		if bold {
			attrs = append(attrs, color.Bold)
		}
		c = color.New(attrs...)
		s.styles[key] = c
	}
	s.buf.WriteString(c.Sprint(text))
}

// HideCursor turns the terminal cursor off.
func (s *Screen) HideCursor() {
	s.buf.WriteString("\x1b[?25l")
}

// ShowCursor turns the terminal cursor back on.
func (s *Screen) ShowCursor() {
	s.buf.WriteString("\x1b[?25h")
}

// Flush writes the accumulated frame in one call and resets the buffer.
func (s *Screen) Flush() error {
	_, err := io.WriteString(s.out, s.buf.String())
	s.buf.Reset()
	return err
}
