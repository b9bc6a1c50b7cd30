package tracker

import (
	"fmt"

	"github.com/dasdy/gridtip/model"
)

// Sink applies a tooltip state to whatever displays it.
type Sink interface {
	Apply(state model.TooltipState) error
}

type SinkFunc func(state model.TooltipState) error

func (f SinkFunc) Apply(state model.TooltipState) error {
	return f(state)
}

// Session owns the tooltip of one view. It starts hidden and moves between
// hidden and visible on every pointer event, in the order they are handled.
type Session struct {
	tracker *Tracker
	sink    Sink
	state   model.TooltipState
}

func NewSession(tracker *Tracker, sink Sink) *Session {
	return &Session{
		tracker: tracker,
		sink:    sink,
		state:   model.Hidden(),
	}
}

// Handle resolves the event and hands the new state to the sink. The only
// errors come from the sink itself.
func (s *Session) Handle(event model.PointerEvent) error {
	switch event.Kind {
	case model.PointerMove:
		s.state = s.tracker.Locate(event.X, event.Y, event.Anchor)
	case model.PointerLeave:
		s.state = s.tracker.Clear()
	default:
		s.state = model.Hidden()
	}

	if s.sink == nil {
		return nil
	}

	if err := s.sink.Apply(s.state); err != nil {
		return fmt.Errorf("could not apply tooltip state: %w", err)
	}

	return nil
}

func (s *Session) State() model.TooltipState {
	return s.state
}
