package routes

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/gridtip/logging"
	"github.com/dasdy/gridtip/model"
	"github.com/dasdy/gridtip/tracker"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{}

// PointerMessage is what the page script sends for every pointer event.
type PointerMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	model.Anchor
}

// Event converts the message. Anything that is not a move is treated as the
// pointer leaving the surface.
func (m *PointerMessage) Event() model.PointerEvent {
	if m.Type != "move" {
		return model.PointerEvent{Kind: model.PointerLeave}
	}

	return model.PointerEvent{Kind: model.PointerMove, X: m.X, Y: m.Y, Anchor: m.Anchor}
}

type socketSink struct {
	conn *websocket.Conn
}

func (s socketSink) Apply(state model.TooltipState) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}

	if err := s.conn.WriteJSON(sanitize(state)); err != nil {
		return fmt.Errorf("could not send tooltip state: %w", err)
	}

	return nil
}

// PointerHandle upgrades to a websocket and answers every pointer event with
// the new tooltip state. Events are handled one at a time, in arrival order.
func (s *ServerHandler) PointerHandle(w http.ResponseWriter, r *http.Request) {
	ctx := logging.AppendCtx(r.Context(), slog.String("remote", r.RemoteAddr))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		slog.ErrorContext(ctx, "Failed to upgrade connection", "error", err)

		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	slog.InfoContext(ctx, "Pointer socket opened")

	session := tracker.NewSession(s.Tracker, socketSink{conn: conn})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "Pointer socket closed unexpectedly", "error", err)
			} else {
				slog.InfoContext(ctx, "Pointer socket closed")
			}

			return
		}

		var msg PointerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.WarnContext(ctx, "Malformed pointer message", "error", err)

			msg = PointerMessage{Type: "leave"}
		}

		if err := session.Handle(msg.Event()); err != nil {
			slog.ErrorContext(ctx, "Failed to apply tooltip state", "error", err)

			return
		}
	}
}
