package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/logging"
	cs "github.com/dasdy/gridtip/web/components"
)

// BuildGridRenderContext builds the render context for the grid page.
func (s *ServerHandler) BuildGridRenderContext() cs.RenderContext {
	return cs.RenderContext{
		Width:        s.Grid.TotalWidth(),
		Height:       s.Grid.TotalHeight(),
		Instructions: layout.DrawInstructions(s.Grid),
		FillStyles:   s.Palette.FillStyles(),
		SocketPath:   s.SocketPath,
	}
}

// GridHandle serves the page with the painted grid.
func (s *ServerHandler) GridHandle(w http.ResponseWriter, r *http.Request) {
	ctx := logging.AppendCtx(r.Context(), slog.String("path", r.URL.Path))
	slog.InfoContext(ctx, "Handling grid page request")

	if r.URL.Path != "/" {
		http.NotFound(w, r)

		return
	}

	renderContext := s.BuildGridRenderContext()

	if err := SafeRenderTemplate(cs.GridPage(&renderContext), w); err != nil {
		slog.ErrorContext(ctx, "Failed to render grid page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// InstructionsHandle serves the draw instruction sequence as JSON.
func (s *ServerHandler) InstructionsHandle(w http.ResponseWriter, _ *http.Request) {
	slog.Debug("Handling instructions request")

	if err := writeJSON(w, layout.DrawInstructions(s.Grid)); err != nil {
		slog.Error("Failed to write instructions", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
