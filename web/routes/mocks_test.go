package routes_test

import (
	"context"
	"io"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/web/routes"
)

// MockComponent implements the templ.Component interface for testing.
type MockComponent struct {
	RenderFunc func(ctx context.Context, w io.Writer) error
}

func (m MockComponent) Render(ctx context.Context, w io.Writer) error {
	return m.RenderFunc(ctx, w)
}

// setupServerHandler builds the 2x3 grid of 20x40 cells used throughout the tests.
func setupServerHandler() *routes.ServerHandler {
	return routes.NewServerHandler(layout.MustBuild(2, 3, 20, 40), layout.DefaultPalette())
}
