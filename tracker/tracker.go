package tracker

import (
	"math"

	"github.com/dasdy/gridtip/model"
)

// Locate finds the cell under the pointer and places the tooltip directly
// above it. Anything that does not land on a cell resolves to a hidden
// tooltip, never an error.
//
// The index is derived by truncating division, which only holds because all
// cells share one size and tile the grid without gaps. Cells of varying size
// would need a search instead of a single lookup.
func Locate(x, y float64, grid *model.Grid, anchor model.Anchor) model.TooltipState {
	if grid == nil || !finite(x) || !finite(y) {
		return model.Hidden()
	}

	// Only reachable for grids not made by layout.Build.
	if !(grid.CellWidth > 0) || !(grid.CellHeight > 0) {
		return model.Hidden()
	}

	col := math.Trunc(x / grid.CellWidth)
	row := math.Trunc(y / grid.CellHeight)

	// Kept in floating point so far-away pointers cannot overflow int.
	index := col + row*float64(grid.Cols)
	if index < 0 || index >= float64(len(grid.Cells)) {
		return model.Hidden()
	}

	cell := &grid.Cells[int(index)]

	// Out of range columns wrap into the next row; the containment check
	// catches those and negative offsets that truncate to zero.
	if !cell.Contains(x, y) {
		return model.Hidden()
	}

	return model.TooltipState{
		Visible: true,
		Left:    cell.X + anchor.OffsetX,
		Top:     cell.Y + anchor.OffsetY - anchor.TooltipHeight,
		Text:    cell.Label,
	}
}

// Clear is the result of the pointer leaving the surface.
func Clear() model.TooltipState {
	return model.Hidden()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Tracker binds Locate to a single, read-only grid.
type Tracker struct {
	grid *model.Grid
}

func New(grid *model.Grid) *Tracker {
	return &Tracker{grid: grid}
}

func (t *Tracker) Grid() *model.Grid {
	return t.grid
}

func (t *Tracker) Locate(x, y float64, anchor model.Anchor) model.TooltipState {
	return Locate(x, y, t.grid, anchor)
}

func (t *Tracker) Clear() model.TooltipState {
	return Clear()
}
