package websocket_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.Empty
)

func dial(ctx context.Context, t *testing.T, st *suite.Suite) (*gorilla.Conn, *http.Response) {
	t.Helper()

	conn, resp, err := gorilla.DefaultDialer.DialContext(ctx, st.WebSocketURL, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn, resp
}

func send(t *testing.T, conn *gorilla.Conn, action string, payload any) {
	t.Helper()

	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	require.NoError(t, conn.WriteJSON(websocket.Message{Action: action, Payload: raw}))
}

func read(t *testing.T, conn *gorilla.Conn) websocket.Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg websocket.Message
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func readRender(t *testing.T, conn *gorilla.Conn) websocket.RenderPayload {
	t.Helper()

	msg := read(t, conn)
	require.Equal(t, "game:render", msg.Action)

	var payload websocket.RenderPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	return payload
}

func TestServer_Connect(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a client attached to /ws
	conn, resp := dial(ctx, t, st)

	// Then: a session cookie is issued
	assert.NotEmpty(t, resp.Cookies())

	// When: the client asks for the board
	send(t, conn, "connect", nil)

	// Then: an empty board is rendered
	render := readRender(t, conn)
	assert.Equal(t, websocket.RenderPayload{}, render)
}

func TestServer_GameTurn(t *testing.T) {
	t.Run("Human move and bot reply are rendered", func(t *testing.T) {
		ctx, st := suite.New(t)
		conn, _ := dial(ctx, t, st)

		// When: the human takes the top-left corner
		send(t, conn, "game:turn", map[string]int{"cell": 0})

		// Then: two renders follow, the human move and the bot's centre reply
		assert.Equal(t, [9]entity.Cell{x, e, e, e, e, e, e, e, e}, readRender(t, conn).Board)
		assert.Equal(t, [9]entity.Cell{x, e, e, e, o, e, e, e, e}, readRender(t, conn).Board)
	})

	t.Run("Illegal move renders nothing", func(t *testing.T) {
		ctx, st := suite.New(t)
		conn, _ := dial(ctx, t, st)

		send(t, conn, "game:turn", map[string]int{"cell": 0})
		readRender(t, conn)
		readRender(t, conn)

		// When: the occupied cell is played, followed by a board request
		send(t, conn, "game:turn", map[string]int{"cell": 4})
		send(t, conn, "connect", nil)

		// Then: the next message is the requested render with the unchanged board
		assert.Equal(t, [9]entity.Cell{x, e, e, e, o, e, e, e, e}, readRender(t, conn).Board)
	})

	t.Run("Game ends with a message and resets", func(t *testing.T) {
		ctx, st := suite.New(t)
		conn, _ := dial(ctx, t, st)

		// When: the human plays 0, 1 and 3
		var last websocket.RenderPayload
		for _, cell := range []int{0, 1, 3} {
			send(t, conn, "game:turn", map[string]int{"cell": cell})
			readRender(t, conn)
			last = readRender(t, conn)
		}

		// Then: the bot's winning render carries the message
		assert.Equal(t, websocket.RenderPayload{
			Board:   [9]entity.Cell{x, x, o, x, o, e, o, e, e},
			Message: "Computer wins!",
		}, last)

		// When: the game is reset
		send(t, conn, "game:reset", nil)

		// Then: an empty board is rendered
		assert.Equal(t, websocket.RenderPayload{}, readRender(t, conn))
	})

	t.Run("Error on missing cell", func(t *testing.T) {
		ctx, st := suite.New(t)
		conn, _ := dial(ctx, t, st)

		send(t, conn, "game:turn", map[string]string{})

		msg := read(t, conn)
		assert.Equal(t, "error", msg.Action)
	})
}

func TestServer_UnknownAction(t *testing.T) {
	ctx, st := suite.New(t)
	conn, _ := dial(ctx, t, st)

	// When: an unknown action is sent
	send(t, conn, "game:join", nil)

	// Then: an error message is returned
	msg := read(t, conn)
	require.Equal(t, "error", msg.Action)

	var payload websocket.ErrorPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Contains(t, payload.Error, "game:join")
}

func TestServer_SessionsAreIsolated(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: two clients
	first, _ := dial(ctx, t, st)
	second, _ := dial(ctx, t, st)

	// When: only the first client plays
	send(t, first, "game:turn", map[string]int{"cell": 0})
	readRender(t, first)
	readRender(t, first)

	// Then: the second client's board is still empty
	send(t, second, "connect", nil)
	assert.Equal(t, websocket.RenderPayload{}, readRender(t, second))
}
