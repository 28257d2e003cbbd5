package websocket

import (
	"context"
	"encoding/json"
	"fmt"
)

// handleConnect - renders the current board for a freshly attached client.
func (that *Server) handleConnect(_ context.Context, client *connection, _ *Message) error {
	client.render(client.session.Cells(), "")

	return nil
}

func (that *Server) handleGameTurn(_ context.Context, client *connection, msg *Message) error {
	var payload TurnPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Cell == nil {
		if sendErr := client.sendError("cell is required"); sendErr != nil {
			return fmt.Errorf("failed to send response: %w", sendErr)
		}

		return fmt.Errorf("invalid turn payload: %s", msg.Payload)
	}

	if err := that.uGame.MakeTurn(client.session, *payload.Cell); err != nil {
		if sendErr := client.sendError("failed to make turn"); sendErr != nil {
			return fmt.Errorf("failed to send response: %w", sendErr)
		}

		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

func (that *Server) handleGameReset(_ context.Context, client *connection, _ *Message) error {
	that.uGame.ResetGame(client.session)

	return nil
}
