package pointerlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dasdy/gridtip/model"
	"github.com/dasdy/gridtip/pointerlog/parser"
	"github.com/dasdy/gridtip/tracker"
)

// Loop feeds every line of ch to the session in the order received. Lines
// that do not parse hide the tooltip. It returns when ch is closed, the
// context is done, or the session sink fails.
func Loop(ctx context.Context, ch <-chan string, session *tracker.Session, verbose bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-ch:
			if !ok {
				slog.Debug("Input exhausted, stopping replay")

				return nil
			}

			event, err := parser.ParseLine(line)
			if err != nil {
				slog.Warn("Could not parse pointer event", "line", line, "error", err)

				event = &model.PointerEvent{Kind: model.PointerLeave}
			}

			if event == nil {
				continue
			}

			if verbose {
				slog.Info("Pointer event", "event", *event)
			}

			if err := session.Handle(*event); err != nil {
				return fmt.Errorf("replay stopped: %w", err)
			}
		}
	}
}

// JSONSink writes every tooltip state as one JSON line.
func JSONSink(w io.Writer) tracker.Sink {
	encoder := json.NewEncoder(w)

	return tracker.SinkFunc(func(state model.TooltipState) error {
		if err := encoder.Encode(state); err != nil {
			return fmt.Errorf("could not encode tooltip state: %w", err)
		}

		return nil
	})
}
