package render

import (
	"fmt"
	"log/slog"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/model"
)

// Surface is the drawing target of a grid.
type Surface interface {
	CreateSurface(width, height float64) error
	DrawRect(x, y, width, height float64, fillStyle string) error
}

// Progress is notified after every drawn rectangle. progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
}

// Paint sizes the surface to the grid and fills every cell in row-major order.
func Paint(grid *model.Grid, surface Surface, palette layout.Palette, progress Progress) error {
	if err := surface.CreateSurface(grid.TotalWidth(), grid.TotalHeight()); err != nil {
		return fmt.Errorf("could not create surface: %w", err)
	}

	for i, instr := range layout.DrawInstructions(grid) {
		err := surface.DrawRect(instr.X, instr.Y, instr.Width, instr.Height, palette.FillStyleFor(instr.Category))
		if err != nil {
			return fmt.Errorf("could not draw cell %d: %w", i, err)
		}

		if progress != nil {
			if err := progress.Add(1); err != nil {
				slog.Warn("Failed to report progress", "error", err)
			}
		}
	}

	return nil
}
