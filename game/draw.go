package game

import (
	"strconv"
	"strings"

	"termtetris/term"
)

// Draw renders the field onto the screen. Decoration (borders, captions) is
// drawn once; game info only when it changed since the last frame.
func (f *Field) Draw(s *term.Screen) {
	if !f.decorationDrawn {
		f.decorationDrawn = true
		s.MoveTo(f.top, f.left)
		s.Span(f.borderCols, ColorBorder)
		for r := 0; r < f.fieldRows; r++ {
			s.MoveTo(f.fieldTop+r, f.left)
			s.Span(1, ColorBorder)
			s.MoveTo(f.fieldTop+r, f.fieldLeft+f.fieldCols)
			s.Span(1, ColorBorder)
		}
		s.MoveTo(f.fieldTop+f.fieldRows, f.left)
		s.Span(f.borderCols, ColorBorder)

		s.MoveTo(f.infoTop, f.infoLeft)
		s.TextColor("SCORE", term.DefaultFg, term.DefaultBg, true)
		s.MoveTo(f.infoTop+2, f.infoLeft)
		s.TextColor("LEVEL", term.DefaultFg, term.DefaultBg, true)
		s.MoveTo(f.infoTop+4, f.infoLeft)
		s.TextColor("LINES", term.DefaultFg, term.DefaultBg, true)
		s.MoveTo(f.infoTop+6, f.infoLeft)
		s.TextColor("NEXT", term.DefaultFg, term.DefaultBg, true)
	}

	if f.state == StatePaused || f.state == StateResuming {
		// the field stays hidden while paused; one wipe per caption change
		if f.clearFieldOnce {
			f.clearFieldOnce = false
			for y := 0; y < f.fieldRows; y++ {
				s.MoveTo(f.fieldTop+y, f.fieldLeft)
				s.Span(f.fieldCols, ColorEmpty)
			}
			f.clearNextPiece(s)
		}
	} else {
		for r := 0; r < f.fieldRows; r++ {
			s.MoveTo(f.fieldTop+r, f.fieldLeft)
			for _, tag := range f.grid[r] {
				if tag != 0 {
					s.Span(1, tag)
				} else {
					s.Text("-")
				}
			}
		}

		if f.piece != nil {
			x := f.fieldLeft + f.piece.X
			if f.drop {
				for _, y := range f.dropTrail {
					drawPiece(s, x, f.fieldTop+y, f.piece)
				}
			} else {
				drawPiece(s, x, f.fieldTop+f.piece.Y, f.piece)
			}
		}

		if f.infoChanged {
			f.infoChanged = false
			s.MoveTo(f.infoTop+1, f.infoLeft)
			s.TextColor(center(strconv.Itoa(f.score), InfoCols), term.DefaultFg, term.DefaultBg, true)
			s.MoveTo(f.infoTop+3, f.infoLeft)
			s.TextColor(center(strconv.Itoa(f.level), InfoCols), term.DefaultFg, term.DefaultBg, true)
			s.MoveTo(f.infoTop+5, f.infoLeft)
			s.TextColor(center(strconv.Itoa(f.lines), InfoCols), term.DefaultFg, term.DefaultBg, true)

			f.clearNextPiece(s)
			drawPiece(s, f.infoLeft+1, f.infoTop+7, f.nextPiece)
		}
	}

	if len(f.message) > 0 {
		y0 := f.fieldRows/2 - len(f.message)/2
		x0 := f.fieldCols/2 - len(f.message[0])/2
		for i, word := range f.message {
			s.MoveTo(f.fieldTop+y0+i, f.fieldLeft+x0)
			s.TextColor(word, ColorMessage, ColorEmpty, true)
		}
	}
}

func (f *Field) clearNextPiece(s *term.Screen) {
	s.MoveTo(f.infoTop+7, f.infoLeft+1)
	s.Span(maxSpriteWidth, ColorEmpty)
	s.MoveTo(f.infoTop+8, f.infoLeft+1)
	s.Span(maxSpriteWidth, ColorEmpty)
}

func drawPiece(s *term.Screen, x0, y0 int, p *Piece) {
	for r, row := range p.Bitmap() {
		for c, filled := range row {
			if !filled {
				continue
			}
			s.MoveTo(y0+r, x0+c)
			s.Span(1, p.Color)
		}
	}
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
