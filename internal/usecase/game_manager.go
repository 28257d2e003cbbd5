package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// GameManager opens one private game session per client.
type GameManager struct {
	logger *slog.Logger

	human *entity.Player
	bot   *entity.Player
}

func NewGameManager(logger *slog.Logger, human, bot *entity.Player) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),

		human: human,
		bot:   bot,
	}
}

// NewSession - creates a fresh game bound to the client's render callback.
func (that *GameManager) NewSession(sessionID string, render tictactoe.RenderFunc) (*tictactoe.GameController, error) {
	logger := that.logger.With("sessionID", sessionID)

	session, err := tictactoe.NewGameController(logger, that.human, that.bot, render)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	logger.Info("game session started", "human", that.human.Name, "bot", that.bot.Name)

	return session, nil
}

// MakeTurn - applies the human move. Illegal moves are swallowed, only precondition violations are returned.
func (that *GameManager) MakeTurn(session *tictactoe.GameController, cell int) error {
	log := that.logger.With("method", "MakeTurn")

	err := session.PlayTurn(cell)
	switch {
	case err == nil:
		if session.IsTerminal() {
			log.Info("game finished", "outcome", session.Result().Outcome.String(), "winner", session.Result().Winner)
		}

		return nil
	case errors.Is(err, apperror.ErrPreconditionViolation):
		log.Error("failed make turn", "cell", cell, "error", err)

		return fmt.Errorf("failed make turn: %w", err)
	default:
		log.Debug("turn rejected", "cell", cell, "error", err)

		return nil
	}
}

func (that *GameManager) ResetGame(session *tictactoe.GameController) {
	session.ResetGame()

	that.logger.Debug("game reset")
}
