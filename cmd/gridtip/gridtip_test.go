package gridtip

import (
	"testing"

	"github.com/dasdy/gridtip/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	t.Cleanup(func() {
		rows, cols, cellWidth, cellHeight = 50, 144, 20, 40
	})

	t.Run("default dimensions", func(t *testing.T) {
		grid, err := buildGrid()

		require.NoError(t, err)
		assert.Len(t, grid.Cells, 50*144)
		assert.InDelta(t, 2880.0, grid.TotalWidth(), 0)
		assert.InDelta(t, 2000.0, grid.TotalHeight(), 0)
	})

	t.Run("invalid dimensions fail before serving", func(t *testing.T) {
		rows = 0

		grid, err := buildGrid()

		require.ErrorIs(t, err, layout.ErrInvalidDimensions)
		assert.Nil(t, grid)
	})
}
