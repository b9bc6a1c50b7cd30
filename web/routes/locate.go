package routes

import (
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dasdy/gridtip/model"
)

// queryFloat reads a numeric query parameter. Missing values default to 0,
// malformed ones to NaN so that the lookup degrades to a hidden tooltip.
func queryFloat(q url.Values, name string) float64 {
	raw := q.Get(name)
	if raw == "" {
		return 0
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Debug("Malformed query parameter", "name", name, "value", raw)

		return math.NaN()
	}

	return v
}

// LocateHandle answers a single pointer lookup with the resulting tooltip state.
func (s *ServerHandler) LocateHandle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	anchor := model.Anchor{
		OffsetX:       queryFloat(q, "offsetX"),
		OffsetY:       queryFloat(q, "offsetY"),
		TooltipHeight: queryFloat(q, "tooltipHeight"),
	}

	state := s.Tracker.Locate(queryFloat(q, "x"), queryFloat(q, "y"), anchor)

	if err := writeJSON(w, sanitize(state)); err != nil {
		slog.Error("Failed to write tooltip state", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
