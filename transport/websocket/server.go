package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	sessionCookieName = "user_session"
	maxMessageSize    = 4096
	writeWait         = 10 * time.Second
)

type uGame interface {
	NewSession(sessionID string, render tictactoe.RenderFunc) (*tictactoe.GameController, error)
	MakeTurn(session *tictactoe.GameController, cell int) error
	ResetGame(session *tictactoe.GameController)
}

type handlerFunc func(ctx context.Context, client *connection, message *Message) error

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleGameReset

	return server
}

// Handler - returns the /ws endpoint. Open connections are closed once ctx is done.
func (that *Server) Handler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	}
}

// upgradeToWebSocket - upgrades the connection and runs one private game on it.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	sessionID, header := that.sessionCookie(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	client := &connection{
		conn:   conn,
		logger: that.logger.With("sessionID", sessionID),
	}

	client.session, err = that.uGame.NewSession(sessionID, client.render)
	if err != nil {
		log.Error("failed to start game session", "error", err)
		_ = client.sendError("failed to start a new game")
		return
	}

	log.Info("WebSocket connection established", "sessionID", sessionID)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	if err = that.handleMessages(ctx, client); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client one at a time.
func (that *Server) handleMessages(ctx context.Context, client *connection) error {
	log := that.logger.With("method", "handleMessages")

	client.conn.SetReadLimit(maxMessageSize)

	for {
		_, reqBody, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || errors.Is(ctx.Err(), context.Canceled) {
				log.Info("WebSocket connection closed")
				return nil
			}

			return err
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			if err = client.sendError("invalid message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			if err = client.sendError("unknown action: " + message.Action); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// sessionCookie - reuses the user session or issues a new one.
func (that *Server) sessionCookie(req *http.Request) (string, http.Header) {
	if cookie, err := req.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/ws",
		HttpOnly: true,
	}

	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	return cookie.Value, header
}
