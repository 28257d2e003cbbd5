package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	human := conf.Players.HumanPlayer()
	bot := conf.Players.BotPlayer()

	gameManager := usecase.NewGameManager(logger, human, bot)
	wsServer := websocket.New(logger, gameManager)
	router := rest.NewRouter(logger, wsServer.Handler(ctx))

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "human", human.Mark, "bot", bot.Mark)
	if err := rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
