package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/gridtip/cmd/gridtip"
	"github.com/dasdy/gridtip/logging"
)

func main() {
	// slogor, wrapped so that attributes stored with logging.AppendCtx are kept.
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, slog.LevelDebug)))

	gridtip.Execute()
}
