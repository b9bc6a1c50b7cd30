package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/logging"
	"github.com/dasdy/gridtip/model"
	"github.com/dasdy/gridtip/web/routes"
)

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// BuildServer wires the handlers for a grid that is fully built beforehand.
func BuildServer(grid *model.Grid, palette layout.Palette, dev bool) *http.ServeMux {
	handler := routes.NewServerHandler(grid, palette)

	mux := http.NewServeMux()
	mux.Handle("/instructions", http.HandlerFunc(handler.InstructionsHandle))
	mux.Handle("/locate", http.HandlerFunc(handler.LocateHandle))
	mux.Handle(handler.SocketPath, http.HandlerFunc(handler.PointerHandle))
	mux.Handle("/", disableCacheInDevMode(dev, http.HandlerFunc(handler.GridHandle)))

	return mux
}

func StartServer(port int, grid *model.Grid, palette layout.Palette, dev bool) error {
	slog.InfoContext(logging.PackageCtx("web"), "Running interface", "port", port, "rows", grid.Rows, "cols", grid.Cols)

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), BuildServer(grid, palette, dev))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
