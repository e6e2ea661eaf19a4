package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanLayoutExactFit(t *testing.T) {
	// screen exactly fits a 2x2 tiling of minimum-size fields
	screen := Rect{Top: 1, Left: 1, Rows: 2 * MinRows, Cols: 2 * MinCols}
	rects, err := PlanLayout(screen, 4, DefaultTuning())
	require.NoError(t, err)

	want := []Rect{
		{Top: 1, Left: 1, Rows: MinRows, Cols: MinCols},
		{Top: 1, Left: 1 + MinCols, Rows: MinRows, Cols: MinCols},
		{Top: 1 + MinRows, Left: 1, Rows: MinRows, Cols: MinCols},
		{Top: 1 + MinRows, Left: 1 + MinCols, Rows: MinRows, Cols: MinCols},
	}
	assert.Equal(t, want, rects, "2x2 tiling with zero gutter")
}

func TestPlanLayoutSingleField(t *testing.T) {
	screen := Rect{Top: 1, Left: 1, Rows: 22, Cols: 17}
	rects, err := PlanLayout(screen, 1, DefaultTuning())
	require.NoError(t, err)
	require.Len(t, rects, 1)
	assert.Equal(t, screen, rects[0])
}

func TestPlanLayoutTooSmall(t *testing.T) {
	tests := []struct {
		name   string
		screen Rect
		count  int
	}{
		{"rows", Rect{Top: 1, Left: 1, Rows: MinRows - 1, Cols: 80}, 1},
		{"cols", Rect{Top: 1, Left: 1, Rows: 40, Cols: MinCols - 1}, 1},
		{"count", Rect{Top: 1, Left: 1, Rows: MinRows, Cols: MinCols}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanLayout(tt.screen, tt.count, DefaultTuning())
			assert.ErrorIs(t, err, ErrCannotTile)
		})
	}
}

func TestPlanLayoutPrefersTightPacking(t *testing.T) {
	// plenty of room: 3 fields should not get a sprawling 1x4 or 2x4 grid
	screen := Rect{Top: 1, Left: 1, Rows: 44, Cols: 60}
	rects, err := PlanLayout(screen, 3, DefaultTuning())
	require.NoError(t, err)
	require.Len(t, rects, 3)

	for _, r := range rects {
		assert.GreaterOrEqual(t, r.Rows, MinRows)
		assert.GreaterOrEqual(t, r.Cols, MinCols)
	}
}

func TestPlanLayoutFieldsFitTiles(t *testing.T) {
	screen := Rect{Top: 1, Left: 1, Rows: 50, Cols: 120}
	for count := 1; count <= 6; count++ {
		rects, err := PlanLayout(screen, count, DefaultTuning())
		require.NoError(t, err, "count=%d", count)
		require.Len(t, rects, count)
		for _, r := range rects {
			_, err := NewField(r, DefaultTuning(), &scriptPicker{shapes: []int{ShapeO}})
			assert.NoError(t, err, "count=%d rect=%+v", count, r)
			assert.GreaterOrEqual(t, r.Top, screen.Top)
			assert.GreaterOrEqual(t, r.Left, screen.Left)
			assert.LessOrEqual(t, r.Top+r.Rows, screen.Top+screen.Rows)
			assert.LessOrEqual(t, r.Left+r.Cols, screen.Left+screen.Cols)
		}
	}
}
