package tracker_test

import (
	"errors"
	"math"
	"testing"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/model"
	"github.com/dasdy/gridtip/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = model.Anchor{OffsetX: 8, OffsetY: 100, TooltipHeight: 18}

func exampleGrid() *model.Grid {
	return layout.MustBuild(2, 3, 20, 40)
}

func TestLocateExample(t *testing.T) {
	grid := exampleGrid()

	t.Run("inside cell", func(t *testing.T) {
		state := tracker.Locate(45, 45, grid, anchor)

		assert.Equal(t, model.TooltipState{
			Visible: true,
			Left:    40 + 8,
			Top:     40 + 100 - 18,
			Text:    "3",
		}, state)
	})

	t.Run("far outside", func(t *testing.T) {
		assert.Equal(t, model.Hidden(), tracker.Locate(500, 500, grid, anchor))
	})
}

func TestLocateInsideEveryCell(t *testing.T) {
	grid := layout.MustBuild(4, 5, 20, 40)

	for _, cell := range grid.Cells {
		points := [][2]float64{
			{cell.X + 1, cell.Y + 1},
			{cell.X + cell.Width/2, cell.Y + cell.Height/2},
			{cell.X + cell.Width - 0.5, cell.Y + cell.Height - 0.5},
		}

		for _, p := range points {
			state := tracker.Locate(p[0], p[1], grid, model.Anchor{})

			require.True(t, state.Visible, "pointer %v should be visible", p)
			assert.Equal(t, cell.Label, state.Text)
			assert.InDelta(t, cell.X, state.Left, 0)
			assert.InDelta(t, cell.Y, state.Top, 0)
		}
	}
}

func TestLocateOutOfBounds(t *testing.T) {
	grid := exampleGrid()

	tests := []struct {
		name string
		x, y float64
	}{
		{"slightly left", -0.5, 10},
		{"slightly above", 45, -10},
		{"row above", 45, -50},
		{"right edge", 60, 10},
		{"right of last row", 60, 79},
		{"wraps into next row", 75, 0},
		{"wraps into last cell", 119, 0},
		{"bottom edge", 10, 80},
		{"bottom right", 59, 80},
		{"nan", math.NaN(), 10},
		{"infinity", 10, math.Inf(1)},
		{"huge", 1e300, 1e300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, model.Hidden(), tracker.Locate(tc.x, tc.y, grid, anchor))
		})
	}

	t.Run("nil grid", func(t *testing.T) {
		assert.Equal(t, model.Hidden(), tracker.Locate(1, 1, nil, anchor))
	})

	degenerate := []struct {
		name string
		grid *model.Grid
	}{
		{"zero value grid", &model.Grid{}},
		{"zero cell width", &model.Grid{Rows: 1, Cols: 1, CellHeight: 10, Cells: []model.Cell{{Height: 10}}}},
		{"nan cell height", &model.Grid{Rows: 1, Cols: 1, CellWidth: 10, CellHeight: math.NaN(), Cells: []model.Cell{{Width: 10}}}},
	}

	for _, tc := range degenerate {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, model.Hidden(), tracker.Locate(0, 0, tc.grid, anchor))
			})
		})
	}
}

func TestLocateCellBorders(t *testing.T) {
	grid := exampleGrid()

	assert.Equal(t, "0", tracker.Locate(0, 0, grid, anchor).Text)
	// A shared border belongs to the cell on its right.
	assert.Equal(t, "1", tracker.Locate(20, 0, grid, anchor).Text)
	assert.Equal(t, "1", tracker.Locate(0, 40, grid, anchor).Text)
}

func TestLocateIsIdempotent(t *testing.T) {
	grid := exampleGrid()
	tr := tracker.New(grid)

	first := tr.Locate(33, 12, anchor)
	second := tr.Locate(33, 12, anchor)

	assert.Equal(t, first, second)
	assert.Same(t, grid, tr.Grid())
}

type recordingSink struct {
	states []model.TooltipState
	err    error
}

func (s *recordingSink) Apply(state model.TooltipState) error {
	s.states = append(s.states, state)

	return s.err
}

func TestSession(t *testing.T) {
	t.Run("starts hidden and follows events", func(t *testing.T) {
		sink := &recordingSink{}
		session := tracker.NewSession(tracker.New(exampleGrid()), sink)

		assert.Equal(t, model.Hidden(), session.State())

		require.NoError(t, session.Handle(model.PointerEvent{Kind: model.PointerMove, X: 45, Y: 45, Anchor: anchor}))
		assert.True(t, session.State().Visible)

		require.NoError(t, session.Handle(model.PointerEvent{Kind: model.PointerMove, X: 500, Y: 500}))
		assert.False(t, session.State().Visible)

		require.NoError(t, session.Handle(model.PointerEvent{Kind: model.PointerMove, X: 5, Y: 5}))
		require.NoError(t, session.Handle(model.PointerEvent{Kind: model.PointerLeave}))

		require.Len(t, sink.states, 4)
		assert.Equal(t, "3", sink.states[0].Text)
		assert.False(t, sink.states[1].Visible)
		assert.Equal(t, "0", sink.states[2].Text)
		assert.Equal(t, model.Hidden(), sink.states[3])
	})

	t.Run("clear always hides", func(t *testing.T) {
		session := tracker.NewSession(tracker.New(exampleGrid()), nil)

		require.NoError(t, session.Handle(model.PointerEvent{Kind: model.PointerLeave}))
		assert.Equal(t, model.Hidden(), session.State())
		assert.Equal(t, model.Hidden(), tracker.Clear())
	})

	t.Run("sink errors are wrapped", func(t *testing.T) {
		sinkErr := errors.New("element gone")
		session := tracker.NewSession(tracker.New(exampleGrid()), &recordingSink{err: sinkErr})

		err := session.Handle(model.PointerEvent{Kind: model.PointerMove, X: 1, Y: 1})

		require.ErrorIs(t, err, sinkErr)
		assert.Contains(t, err.Error(), "could not apply tooltip state")
	})

	t.Run("sink func", func(t *testing.T) {
		var got model.TooltipState

		session := tracker.NewSession(tracker.New(exampleGrid()), tracker.SinkFunc(func(s model.TooltipState) error {
			got = s

			return nil
		}))

		require.NoError(t, session.Handle(model.PointerEvent{Kind: model.PointerMove, X: 25, Y: 1}))
		assert.Equal(t, "1", got.Text)
	})
}
