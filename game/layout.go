package game

import (
	"errors"
	"fmt"
)

// ErrCannotTile is reported when the requested field count has no tiling
// that respects the minimum per-field size.
var ErrCannotTile = errors.New("cannot tile playing fields")

// PlanLayout splits screen into count equal tiles, one per field. All
// (rows, cols) tilings with rows*cols >= count are scored by how far the
// tile's aspect ratio strays from a field's ideal footprint and by how much
// the tiling overshoots the requested count; the cheapest wins, ties going
// to the first enumerated (rows ascending, then cols). Leftover cells become
// a uniform margin around the tiled block; each field then centers itself
// within its tile.
func PlanLayout(screen Rect, count int, tuning Tuning) ([]Rect, error) {
	maxRows := screen.Rows / MinRows
	maxCols := screen.Cols / MinCols

	// ideal width/height of a field at its full footprint, in cells
	ideal := float64(NonFieldCols+tuning.MaxFieldCols) / float64(Borders+tuning.MaxFieldRows)

	bestCost := -1.0
	var bestRows, bestCols int
	for rows := 1; rows <= maxRows; rows++ {
		for cols := 1; cols <= maxCols; cols++ {
			if rows*cols < count {
				continue
			}
			tileH := screen.Rows / rows
			tileW := screen.Cols / cols
			aspect := float64(tileW) / float64(tileH)
			overshoot := float64(rows*cols - count)
			cost := (aspect-ideal)*(aspect-ideal) + overshoot*overshoot
			if bestCost < 0 || cost < bestCost {
				bestCost = cost
				bestRows, bestCols = rows, cols
			}
		}
	}
	if bestCost < 0 {
		return nil, fmt.Errorf("%w: %d fields on %dx%d screen (minimum tile %dx%d)",
			ErrCannotTile, count, screen.Cols, screen.Rows, MinCols, MinRows)
	}

	tileH := screen.Rows / bestRows
	tileW := screen.Cols / bestCols
	offTop := screen.Top + (screen.Rows-bestRows*tileH)/2
	offLeft := screen.Left + (screen.Cols-bestCols*tileW)/2

	rects := make([]Rect, 0, count)
	for i := 0; i < bestRows && len(rects) < count; i++ {
		for j := 0; j < bestCols && len(rects) < count; j++ {
			rects = append(rects, Rect{
				Top:  offTop + i*tileH,
				Left: offLeft + j*tileW,
				Rows: tileH,
				Cols: tileW,
			})
		}
	}
	return rects, nil
}
