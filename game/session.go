package game

import (
	"termtetris/keyboard"
	"termtetris/term"
)

// Session runs one or more fields side by side. Exactly one field is active
// and receives key presses; the others keep ticking on their own.
type Session struct {
	fields []*Field
	active int
}

// NewSession tiles count fields over the screen rectangle.
func NewSession(screen Rect, count int, tuning Tuning, picker Picker) (*Session, error) {
	rects, err := PlanLayout(screen, count, tuning)
	if err != nil {
		return nil, err
	}
	s := &Session{fields: make([]*Field, 0, count)}
	for _, rect := range rects {
		f, err := NewField(rect, tuning, picker)
		if err != nil {
			return nil, err
		}
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// Update advances every field by dt. Real keys go only to the active field.
// If the active field just lost, activity moves to the next field still
// playing, searching forward cyclically.
func (s *Session) Update(dt float64, keys []keyboard.Key) {
	wasOver := s.fields[s.active].GameOver()

	for i, f := range s.fields {
		if i == s.active {
			f.Update(dt, keys)
		} else {
			f.Update(dt, nil)
		}
	}

	if !wasOver && s.fields[s.active].GameOver() && !s.AllOver() {
		for off := 1; off < len(s.fields); off++ {
			i := (s.active + off) % len(s.fields)
			if !s.fields[i].GameOver() {
				s.active = i
				break
			}
		}
	}
}

// AllOver reports whether every field has finished.
func (s *Session) AllOver() bool {
	for _, f := range s.fields {
		if !f.GameOver() {
			return false
		}
	}
	return true
}

// ShouldRestart reports whether the whole session may be rebuilt: all fields
// finished, no post-loss window still running, and a key arrived this tick.
func (s *Session) ShouldRestart(keyPressed bool) bool {
	if !keyPressed || !s.AllOver() {
		return false
	}
	for _, f := range s.fields {
		if f.Blocked() {
			return false
		}
	}
	return true
}

// TogglePause pauses or resumes every field at once.
func (s *Session) TogglePause() {
	for _, f := range s.fields {
		f.TogglePause()
	}
}

// Draw renders every field.
func (s *Session) Draw(scr *term.Screen) {
	for _, f := range s.fields {
		f.Draw(scr)
	}
}
