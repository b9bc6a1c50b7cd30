package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dasdy/gridtip/model"
)

// ParseLine reads one recorded pointer event. Accepted forms:
//
//	move X Y
//	move X Y OFFSET_X OFFSET_Y TOOLTIP_HEIGHT
//	leave
//
// Blank lines and lines starting with '#' yield a nil event and no error.
func ParseLine(line string) (*model.PointerEvent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil, nil //nolint:nilnil
	}

	switch fields[0] {
	case "leave":
		if len(fields) != 1 {
			return nil, fmt.Errorf("leave takes no arguments, got %d", len(fields)-1)
		}

		return &model.PointerEvent{Kind: model.PointerLeave}, nil
	case "move":
		return parseMove(fields[1:])
	default:
		return nil, fmt.Errorf("unknown event '%s'", fields[0])
	}
}

func parseMove(args []string) (*model.PointerEvent, error) {
	if len(args) != 2 && len(args) != 5 {
		return nil, fmt.Errorf("move expects 2 or 5 numbers, got %d", len(args))
	}

	values := make([]float64, len(args))

	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimRight(a, ","), 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse move argument %d: %w", i+1, err)
		}

		values[i] = v
	}

	event := &model.PointerEvent{Kind: model.PointerMove, X: values[0], Y: values[1]}
	if len(values) == 5 {
		event.Anchor = model.Anchor{OffsetX: values[2], OffsetY: values[3], TooltipHeight: values[4]}
	}

	return event, nil
}
