package game

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"termtetris/keyboard"
)

// Screen geometry shared by the field and the layout planner. The game-info
// panel (score, level, lines, next-piece preview) sits right of the field and
// shares its terminal rows; the borders are one cell thick.
const (
	Borders = 2

	maxSpriteHeight = 4
	maxSpriteWidth  = 4
	maxMessageWidth = 6 // "STEADY"

	// caption + value for score, level and lines, then the next-piece
	// caption with a two-row preview
	InfoRows = 2 + 2 + 2 + 3
	InfoCols = 5 // widest caption (SCORE, LEVEL, LINES)

	MinFieldRows = InfoRows // >= maxSpriteHeight
	NonFieldCols = Borders + InfoCols
	MinFieldCols = maxMessageWidth // >= maxSpriteWidth

	MinRows = MinFieldRows + Borders
	MinCols = MinFieldCols + NonFieldCols
)

// ErrScreenTooSmall is reported when a field cannot fit its allotted screen
// rectangle even at minimum size.
var ErrScreenTooSmall = errors.New("terminal too small")

// Rect is a screen rectangle in 1-based terminal coordinates.
type Rect struct {
	Top, Left  int
	Rows, Cols int
}

// State tags the phase handler a field is currently running. States are
// mutually exclusive; pause/resume remember the interrupted state in
// prevState.
type State int

const (
	StateFalling State = iota
	StateWaitPiece
	StateClearing
	StateGameOver
	StatePaused
	StateResuming
)

// Field is one independent playing field: grid, active piece, score and the
// state machine driving them. It is exclusively owned by its caller and only
// mutated inside Update.
type Field struct {
	tuning Tuning
	picker Picker

	// geometry, fixed at construction
	fieldRows, fieldCols int
	rows, cols           int
	borderCols           int
	top, left            int
	fieldTop, fieldLeft  int
	infoTop, infoLeft    int

	// grid[y][x] holds a color tag for settled cells, 0 when empty; the
	// falling piece is never part of the grid
	grid [][]int

	score int
	level int
	lines int

	piece     *Piece
	nextPiece *Piece

	state     State
	prevState State

	blocksTraveled float64
	speedupTime    float64
	drop           bool
	dropTrail      []int

	filledRows []int
	clearTime  float64
	pieceTime  float64
	overTime   float64
	resumeTime float64

	message         []string
	decorationDrawn bool
	clearFieldOnce  bool
	infoChanged     bool
}

// NewField builds a field centered inside rect. The field area stretches to
// fill the rectangle up to the tuning caps unless NoLimits is set.
func NewField(rect Rect, tuning Tuning, picker Picker) (*Field, error) {
	if rect.Rows < MinRows {
		return nil, fmt.Errorf("%w: %d rows, need %d", ErrScreenTooSmall, rect.Rows, MinRows)
	}
	fieldRows := rect.Rows - Borders
	if !tuning.NoLimits {
		fieldRows = min(fieldRows, tuning.MaxFieldRows)
	}

	if rect.Cols < MinCols {
		return nil, fmt.Errorf("%w: %d columns, need %d", ErrScreenTooSmall, rect.Cols, MinCols)
	}
	fieldCols := rect.Cols - NonFieldCols
	if !tuning.NoLimits {
		fieldCols = min(fieldCols, tuning.MaxFieldCols)
	}

	f := &Field{
		tuning:      tuning,
		picker:      picker,
		fieldRows:   fieldRows,
		fieldCols:   fieldCols,
		rows:        fieldRows + Borders,
		cols:        fieldCols + NonFieldCols,
		borderCols:  fieldCols + Borders,
		level:       1,
		infoChanged: true,
	}
	f.top = rect.Top + rect.Rows/2 - f.rows/2
	f.left = rect.Left + rect.Cols/2 - f.cols/2
	f.fieldTop = f.top + Borders/2
	f.fieldLeft = f.left + Borders/2
	f.infoTop = f.fieldTop + f.fieldRows/2 - InfoRows/2
	f.infoLeft = f.left + f.borderCols

	f.grid = make([][]int, f.fieldRows)
	for y := range f.grid {
		f.grid[y] = make([]int, f.fieldCols)
	}

	f.nextPiece = f.newPiece()
	f.spawn()
	// fake a pause/resume so a fresh field opens with the countdown
	f.TogglePause()
	f.TogglePause()
	return f, nil
}

func (f *Field) newPiece() *Piece {
	shape := f.picker.PickShape()
	bm := Shapes[shape][0]
	w, h := len(bm[0]), len(bm)
	return &Piece{
		Shape:  shape,
		Color:  f.picker.PickColor(),
		X:      f.fieldCols/2 - w/2,
		Width:  w,
		Height: h,
	}
}

// collides reports whether the active piece overlaps the grid bounds or a
// settled cell at its current position and rotation.
func (f *Field) collides() bool {
	bm := f.piece.Bitmap()
	for r, row := range bm {
		for c, filled := range row {
			if !filled {
				continue
			}
			x := f.piece.X + c
			y := f.piece.Y + r
			if x < 0 || x >= f.fieldCols || y < 0 || y >= f.fieldRows {
				return true
			}
			if f.grid[y][x] != 0 {
				return true
			}
		}
	}
	return false
}

// lockPiece commits the piece's cells into the grid and discards it.
func (f *Field) lockPiece() {
	bm := f.piece.Bitmap()
	for r, row := range bm {
		for c, filled := range row {
			if !filled {
				continue
			}
			x := f.piece.X + c
			y := f.piece.Y + r
			if f.grid[y][x] != 0 {
				panic("tetris: locking piece onto an occupied cell")
			}
			f.grid[y][x] = f.piece.Color
		}
	}
	f.piece = nil
}

// spawn promotes the queued piece to active, queues a fresh one and decides
// between Falling and GameOver. Instantaneous.
func (f *Field) spawn() {
	f.speedupTime = 0
	f.drop = false
	f.dropTrail = nil

	f.piece = f.nextPiece
	f.nextPiece = f.newPiece()
	f.infoChanged = true
	if f.collides() {
		f.message = []string{"GAME", "OVER"}
		f.state = StateGameOver
		f.overTime = f.tuning.GameOverDelay
		return
	}
	f.state = StateFalling
	f.blocksTraveled = 0
}

// captureFilledRows records complete rows among [y0, y0+height) and reports
// whether any were found.
func (f *Field) captureFilledRows(y0, height int) bool {
	f.filledRows = f.filledRows[:0]
	for y := y0; y < min(y0+height, f.fieldRows); y++ {
		filled := true
		for _, cell := range f.grid[y] {
			if cell == 0 {
				filled = false
				break
			}
		}
		if filled {
			f.filledRows = append(f.filledRows, y)
		}
	}
	return len(f.filledRows) > 0
}

func (f *Field) addScore(points int) {
	f.score += points
	f.infoChanged = true
}

func (f *Field) addLines(n int) {
	f.lines += n
	f.level = f.lines/10 + 1
	f.addScore(100 * n * f.level)
}

// Update advances the field by dt seconds, applying this tick's key presses.
func (f *Field) Update(dt float64, keys []keyboard.Key) {
	switch f.state {
	case StateFalling:
		f.updateFalling(dt, keys)
	case StateWaitPiece:
		f.pieceTime -= dt
		if f.pieceTime <= 0 {
			f.spawn()
		}
	case StateClearing:
		f.updateClearing(dt)
	case StateGameOver:
		f.overTime -= dt
	case StatePaused:
		// frozen: dt is not consumed
	case StateResuming:
		f.updateResuming(dt)
	}
}

func (f *Field) updateFalling(dt float64, keys []keyboard.Key) {
	speed := f.tuning.MoveSpeed * math.Pow(f.tuning.LevelGrowth, float64(f.level-1))
	if f.speedupTime > 0 {
		f.speedupTime -= dt
		speed *= f.tuning.SpeedupCoef
	}
	if f.drop {
		// fixed super fast speed, ignoring level and soft-drop
		speed = f.tuning.DropSpeed
	}

	f.blocksTraveled += speed * dt
	if f.blocksTraveled > 1 {
		whole := int(f.blocksTraveled)
		f.blocksTraveled -= float64(whole)
		for i := 0; i < whole; i++ {
			f.piece.Y++ // try descend
			if f.collides() {
				f.piece.Y-- // collision, revert
				y0, height := f.piece.Y, f.piece.Height
				f.lockPiece()
				if f.captureFilledRows(y0, height) {
					f.state = StateClearing
					f.clearTime = f.tuning.ClearDelay
				} else {
					f.state = StateWaitPiece
					f.pieceTime = f.tuning.PieceDelay
				}
				return
			}

			if speed > f.tuning.MoveSpeed {
				// a point for every block traveled with extra speed
				f.addScore(1)
			}
			if f.drop {
				f.dropTrail = append(f.dropTrail, f.piece.Y)
			}
		}
	}

	// no steering mid-drop
	if f.drop {
		return
	}

	for _, key := range keys {
		switch key {
		case keyboard.KeyLeft:
			f.piece.X--
			if f.collides() {
				f.piece.X++
			}
		case keyboard.KeyRight:
			f.piece.X++
			if f.collides() {
				f.piece.X--
			}
		case keyboard.KeyUp:
			orig := f.piece.Rotation
			f.piece.Rotation = (f.piece.Rotation + 1) % 4
			if f.collides() {
				f.piece.Rotation = orig
			}
		case keyboard.KeyDown:
			f.speedupTime = f.tuning.SpeedupWindow
		case keyboard.KeySpace:
			f.drop = true
			f.dropTrail = nil
		}
	}
}

func (f *Field) updateClearing(dt float64) {
	f.clearTime -= dt
	if f.clearTime > 0 {
		// erase left-to-right proportionally to elapsed time
		ratio := 1 - f.clearTime/f.tuning.ClearDelay
		erased := int(ratio * float64(f.fieldCols))
		for _, y := range f.filledRows {
			for x := 0; x < erased; x++ {
				f.grid[y][x] = 0
			}
		}
		return
	}

	kept := make([][]int, 0, f.fieldRows)
	for range f.filledRows {
		kept = append(kept, make([]int, f.fieldCols))
	}
	for y, row := range f.grid {
		if !slices.Contains(f.filledRows, y) {
			kept = append(kept, row)
		}
	}
	f.grid = kept
	f.addLines(len(f.filledRows))
	f.filledRows = f.filledRows[:0]
	f.spawn()
}

func (f *Field) updateResuming(dt float64) {
	f.resumeTime -= dt
	if f.resumeTime > 0 {
		// 6 equal buckets: captions on even ones, blanks flash between
		i := int(f.resumeTime / f.tuning.ResumeDelay * 6)
		i = min(i, 5)
		switch {
		case i%2 > 0:
			f.message = nil
		case i == 4:
			f.message = []string{"READY"}
		case i == 2:
			f.message = []string{"STEADY"}
		default:
			f.message = []string{"GO"}
		}
		f.clearFieldOnce = true // wipe the previous caption
		return
	}

	f.message = nil
	f.infoChanged = true // redraw the next-piece preview
	f.state = f.prevState
}

// TogglePause freezes the field under a PAUSE overlay, or starts the resume
// countdown if already paused. Pausing mid-countdown keeps the originally
// interrupted state.
func (f *Field) TogglePause() {
	if f.state != StatePaused {
		f.message = []string{"PAUSE"}
		f.clearFieldOnce = true
		if f.state != StateResuming {
			f.prevState = f.state
		}
		f.state = StatePaused
	} else {
		f.state = StateResuming
		f.resumeTime = f.tuning.ResumeDelay
	}
}

// Score returns the current score.
func (f *Field) Score() int { return f.score }

// Level returns the current level, derived from cleared lines.
func (f *Field) Level() int { return f.level }

// Lines returns the total number of cleared lines.
func (f *Field) Lines() int { return f.lines }

// GameOver reports whether this field instance has finished.
func (f *Field) GameOver() bool { return f.state == StateGameOver }

// Blocked reports whether the post-loss window is still running; the session
// will not restart while any field is blocked.
func (f *Field) Blocked() bool {
	return f.state == StateGameOver && f.overTime > 0
}
