package game

import "strings"

// Shape family indices. Every family carries exactly four baked rotation
// bitmaps; symmetric families repeat bitmaps so the rotate command is always
// (r+1) mod 4 with no special cases.
const (
	ShapeI = iota
	ShapeO
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
	ShapeT

	ShapeCount = 7
)

// Bitmap is a single rotation of a tetromino, row-major. true marks an
// occupied cell relative to the piece's top-left corner.
type Bitmap [][]bool

// Shapes holds the expanded rotation bitmaps, indexed [shape][rotation].
var Shapes [ShapeCount][4]Bitmap

// '#' occupied, '.' empty. Expanded into Shapes at init.
var shapeSpecs = [ShapeCount][4]string{
	ShapeI: {`
....
####
....
....`, `
..#.
..#.
..#.
..#.`, `
....
....
####
....`, `
.#..
.#..
.#..
.#..`},

	ShapeO: {`
.##.
.##.
....`, `
.##.
.##.
....`, `
.##.
.##.
....`, `
.##.
.##.
....`},

	ShapeL: {`
#..
###
...`, `
.##
.#.
.#.`, `
...
###
..#`, `
.#.
.#.
##.`},

	ShapeJ: {`
..#
###
...`, `
.#.
.#.
.##`, `
...
###
#..`, `
##.
.#.
.#.`},

	ShapeS: {`
.##
##.
...`, `
.#.
.##
..#`, `
...
.##
##.`, `
#..
##.
.#.`},

	ShapeZ: {`
##.
.##
...`, `
..#
.##
.#.`, `
...
##.
.##`, `
.#.
##.
#..`},

	ShapeT: {`
.#.
###
...`, `
.#.
.##
.#.`, `
...
###
.#.`, `
.#.
##.
.#.`},
}

func parseBitmap(spec string) Bitmap {
	lines := strings.Split(strings.TrimSpace(spec), "\n")
	bm := make(Bitmap, len(lines))
	for r, line := range lines {
		bm[r] = make([]bool, len(line))
		for c, ch := range line {
			bm[r][c] = ch == '#'
		}
	}
	return bm
}

func init() {
	for shape, specs := range shapeSpecs {
		for r, spec := range specs {
			Shapes[shape][r] = parseBitmap(spec)
		}
	}
}
