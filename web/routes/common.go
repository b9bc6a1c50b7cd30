package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/a-h/templ"
	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/model"
	"github.com/dasdy/gridtip/tracker"
)

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Grid       *model.Grid
	Tracker    *tracker.Tracker
	Palette    layout.Palette
	SocketPath string
}

func NewServerHandler(grid *model.Grid, palette layout.Palette) *ServerHandler {
	return &ServerHandler{
		Grid:       grid,
		Tracker:    tracker.New(grid),
		Palette:    palette,
		SocketPath: "/ws",
	}
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// writeJSON encodes v fully before touching w, for the same reason as SafeRenderTemplate.
func writeJSON(w http.ResponseWriter, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// sanitize hides a state whose position cannot be encoded. This happens only
// when the host reports a non-finite anchor.
func sanitize(state model.TooltipState) model.TooltipState {
	for _, v := range []float64{state.Left, state.Top} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.Hidden()
		}
	}

	return state
}
