package suite

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/websocket"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Server       *httptest.Server
	WebSocketURL string
}

// New - starts the full HTTP stack on a random local port for the duration of the test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	gameManager := usecase.NewGameManager(logger,
		entity.NewPlayer("YOU", entity.MarkX),
		entity.NewPlayer("Computer", entity.MarkO),
	)
	wsServer := websocket.New(logger, gameManager)

	server := httptest.NewServer(rest.NewRouter(logger, wsServer.Handler(ctx)))

	t.Cleanup(func() {
		cancel()
		server.Close()
	})

	return ctx, &Suite{
		T:            t,
		Logger:       logger,
		Server:       server,
		WebSocketURL: "ws" + strings.TrimPrefix(server.URL, "http") + "/ws",
	}
}
