package game

import "math/rand"

// Color tags are literal SGR attribute numbers, which is what the renderer
// feeds straight into escape sequences. 0 marks an empty grid cell.
const (
	ColorEmpty   = 40 // black background
	ColorBorder  = 47 // white background
	ColorMessage = 31 // red foreground

	pieceColorLo = 41 // piece colors are drawn from [41, 47)
	pieceColorHi = 47
)

// Piece is one in-flight tetromino. Created at spawn, consumed into the grid
// at lock.
type Piece struct {
	Shape    int
	Rotation int
	X, Y     int
	Color    int
	Width    int
	Height   int
}

// Bitmap returns the piece's current rotation bitmap.
func (p *Piece) Bitmap() Bitmap {
	return Shapes[p.Shape][p.Rotation]
}

// Picker chooses the shape and color of each spawned piece. Injected so
// tests can script an exact spawn sequence.
type Picker interface {
	PickShape() int
	PickColor() int
}

type randomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns the default Picker backed by math/rand.
func NewRandomPicker(seed int64) Picker {
	return &randomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPicker) PickShape() int {
	return p.rng.Intn(ShapeCount)
}

func (p *randomPicker) PickColor() int {
	return pieceColorLo + p.rng.Intn(pieceColorHi-pieceColorLo)
}
