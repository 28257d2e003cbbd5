package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	actionConnect   = "connect"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionRender    = "game:render"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type RenderPayload struct {
	Board   [entity.BoardSize]entity.Cell `json:"board"`
	Message string                        `json:"message,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// connection is one client socket and the game it owns.
type connection struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	session *tictactoe.GameController
}

// render is the game's presentation callback; it runs on the connection's read goroutine.
func (that *connection) render(cells [entity.BoardSize]entity.Cell, message string) {
	if err := that.send(actionRender, RenderPayload{Board: cells, Message: message}); err != nil {
		that.logger.Error("failed to render board", "error", err)
	}
}

func (that *connection) sendError(text string) error {
	return that.send(actionError, ErrorPayload{Error: text})
}

func (that *connection) send(action string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response, err := json.Marshal(Message{Action: action, Payload: payloadJSON})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteMessage(websocket.TextMessage, response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
