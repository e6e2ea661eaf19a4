// Package keyboard reads raw terminal input and decodes it into game keys
// and control commands.
package keyboard

import (
	"github.com/mattn/go-tty"
)

// Key is a discrete press event applied to the active field.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpace
)

// Commands are the loop-level controls decoded from input.
type Commands struct {
	Quit  bool
	Pause bool
}

// Decode parses one poll's worth of raw input. Arrow keys arrive as
// ESC [ A/B/C/D; an ESC without that suffix in the same batch means quit;
// unrecognized bytes are skipped.
func Decode(in []rune) (Commands, []Key) {
	var cmds Commands
	var keys []Key
	for i := 0; i < len(in); {
		switch in[i] {
		case 0x1b:
			if i+2 < len(in) && in[i+1] == '[' {
				switch in[i+2] {
				case 'A':
					keys = append(keys, KeyUp)
				case 'B':
					keys = append(keys, KeyDown)
				case 'C':
					keys = append(keys, KeyRight)
				case 'D':
					keys = append(keys, KeyLeft)
				}
				i += 3
			} else {
				cmds.Quit = true
				i++
			}
		case 'p':
			cmds.Pause = true
			i++
		case 'q':
			cmds.Quit = true
			i++
		case ' ':
			keys = append(keys, KeySpace)
			i++
		default:
			i++
		}
	}
	return cmds, keys
}

// Processor pumps runes from the controlling terminal into a channel so the
// frame loop can poll without blocking.
type Processor struct {
	tty     *tty.TTY
	runes   chan rune
	pending []rune
}

// NewProcessor opens the terminal in raw mode and starts the reader.
func NewProcessor() (*Processor, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	p := &Processor{
		tty:   t,
		runes: make(chan rune, 64),
	}
	go p.pump()
	return p, nil
}

func (p *Processor) pump() {
	for {
		r, err := p.tty.ReadRune()
		if err != nil {
			close(p.runes)
			return
		}
		p.runes <- r
	}
}

// Poll drains whatever input arrived since the last call and decodes it.
// It never blocks: no input decodes to empty commands and keys.
func (p *Processor) Poll() (Commands, []Key) {
	buf := p.pending
	p.pending = nil
	drained := 0
	for {
		select {
		case r, ok := <-p.runes:
			if !ok {
				return Decode(buf)
			}
			buf = append(buf, r)
			drained++
		default:
			// An arrow key's three runes can straddle a poll. Hold a
			// trailing partial sequence for the next poll so it is not
			// mistaken for a lone ESC; a held ESC that saw no
			// continuation by then really is one.
			if drained > 0 {
				if tail := partialEscape(buf); tail > 0 {
					p.pending = append(p.pending, buf[len(buf)-tail:]...)
					buf = buf[:len(buf)-tail]
				}
			}
			return Decode(buf)
		}
	}
}

// partialEscape returns the length of an incomplete escape sequence at the
// end of buf, or 0.
func partialEscape(buf []rune) int {
	n := len(buf)
	if n >= 1 && buf[n-1] == 0x1b {
		return 1
	}
	if n >= 2 && buf[n-2] == 0x1b && buf[n-1] == '[' {
		return 2
	}
	return 0
}

// Size returns the terminal dimensions in columns and rows.
func (p *Processor) Size() (cols, rows int, err error) {
	return p.tty.Size()
}

// Close restores the terminal and stops the reader.
func (p *Processor) Close() error {
	return p.tty.Close()
}
