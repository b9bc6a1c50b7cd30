package layout

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dasdy/gridtip/model"
)

var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// CategoryFor returns the fill category of the cell at (row, col).
func CategoryFor(row, col int) model.Category {
	return model.Category((col%3 + row) % 3)
}

// LabelFor returns the text shown in the tooltip of the cell at (row, col).
// It intentionally does not share the formula of CategoryFor: the label is
// periodic in row and column independently, the category only in their sum.
func LabelFor(row, col int) string {
	return strconv.Itoa(col%3 + row%3)
}

// Build lays out rows*cols cells of identical size in row-major order.
func Build(rows, cols int, cellWidth, cellHeight float64) (*model.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d rows, %d cols", ErrInvalidDimensions, rows, cols)
	}

	// Negated comparison so that NaN is rejected as well.
	if !(cellWidth > 0) || !(cellHeight > 0) {
		return nil, fmt.Errorf("%w: cell size %vx%v", ErrInvalidDimensions, cellWidth, cellHeight)
	}

	cells := make([]model.Cell, 0, rows*cols)

	for row := range rows {
		y := cellHeight * float64(row)

		for col := range cols {
			cells = append(cells, model.Cell{
				Row:      row,
				Col:      col,
				X:        cellWidth * float64(col),
				Y:        y,
				Width:    cellWidth,
				Height:   cellHeight,
				Category: CategoryFor(row, col),
				Label:    LabelFor(row, col),
			})
		}
	}

	return &model.Grid{
		Rows:       rows,
		Cols:       cols,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Cells:      cells,
	}, nil
}

// MustBuild is like Build but panics on invalid dimensions.
func MustBuild(rows, cols int, cellWidth, cellHeight float64) *model.Grid {
	grid, err := Build(rows, cols, cellWidth, cellHeight)
	if err != nil {
		panic(err)
	}

	return grid
}

// DrawInstructions returns one fill instruction per cell, in the order the
// rendering collaborator has to execute them.
func DrawInstructions(grid *model.Grid) []model.DrawInstruction {
	result := make([]model.DrawInstruction, 0, len(grid.Cells))

	for _, c := range grid.Cells {
		result = append(result, model.DrawInstruction{
			X:        c.X,
			Y:        c.Y,
			Width:    c.Width,
			Height:   c.Height,
			Category: c.Category,
		})
	}

	return result
}
