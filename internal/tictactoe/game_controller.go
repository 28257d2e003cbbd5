package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInvalidPlayers = errors.New("players must hold distinct marks")

const drawMessage = "It's a draw!"

type State int

const (
	AwaitingHumanMove State = iota
	AwaitingAutomatedMove
	Terminal
)

func (that State) String() string {
	switch that {
	case AwaitingAutomatedMove:
		return "awaiting_automated_move"
	case Terminal:
		return "terminal"
	default:
		return "awaiting_human_move"
	}
}

// RenderFunc receives the board after every mutation. message is empty until the game ends.
type RenderFunc func(cells [entity.BoardSize]entity.Cell, message string)

// GameController is a single game session between a human and the minimax bot.
// It is not safe for concurrent use; callers serialize PlayTurn and ResetGame.
type GameController struct {
	logger *slog.Logger
	render RenderFunc

	board         *entity.Board
	human         *entity.Player
	bot           *entity.Player
	currentPlayer *entity.Player
	terminal      bool
}

func NewGameController(logger *slog.Logger, human, bot *entity.Player, render RenderFunc) (*GameController, error) {
	if human == nil || bot == nil || !human.Mark.IsMark() || human.Mark.Opponent() != bot.Mark {
		return nil, ErrInvalidPlayers
	}

	if render == nil {
		render = func([entity.BoardSize]entity.Cell, string) {}
	}

	return &GameController{
		logger:        logger.With("component", "gameController"),
		render:        render,
		board:         entity.NewBoard(),
		human:         human,
		bot:           bot,
		currentPlayer: human,
	}, nil
}

// PlayTurn places the current player's mark on index and, when the bot is next, answers immediately.
// A rejected move leaves the session untouched and renders nothing.
func (that *GameController) PlayTurn(index int) error {
	if that.terminal {
		return apperror.ErrGameFinished
	}

	if err := that.board.PlaceMarker(index, that.currentPlayer.Mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.logger.Debug("marker placed", "player", that.currentPlayer.Name, "cell", index)

	if result := CheckResult(that.board.Cells()); result.IsTerminal() {
		that.terminal = true
		message := that.resultMessage(result)
		that.logger.Debug("game finished", "outcome", result.Outcome.String(), "message", message)
		that.render(that.board.Cells(), message)

		return nil
	}

	that.render(that.board.Cells(), "")
	that.switchPlayer()

	if that.currentPlayer != that.bot {
		return nil
	}

	move, err := GetBestMove(that.board.Cells(), that.bot.Mark)
	if err != nil {
		return fmt.Errorf("%w: bot failed to choose a move: %w", apperror.ErrPreconditionViolation, err)
	}

	if err = that.PlayTurn(move); err != nil {
		return fmt.Errorf("%w: bot failed to make turn: %w", apperror.ErrPreconditionViolation, err)
	}

	return nil
}

func (that *GameController) ResetGame() {
	that.board.Reset()
	that.currentPlayer = that.human
	that.terminal = false

	that.logger.Debug("game reset")
	that.render(that.board.Cells(), "")
}

func (that *GameController) Cells() [entity.BoardSize]entity.Cell {
	return that.board.Cells()
}

func (that *GameController) Result() entity.Result {
	return CheckResult(that.board.Cells())
}

func (that *GameController) CurrentPlayer() *entity.Player {
	return that.currentPlayer
}

func (that *GameController) IsTerminal() bool {
	return that.terminal
}

func (that *GameController) State() State {
	switch {
	case that.terminal:
		return Terminal
	case that.currentPlayer == that.bot:
		return AwaitingAutomatedMove
	default:
		return AwaitingHumanMove
	}
}

func (that *GameController) switchPlayer() {
	if that.currentPlayer == that.human {
		that.currentPlayer = that.bot
	} else {
		that.currentPlayer = that.human
	}
}

func (that *GameController) resultMessage(result entity.Result) string {
	switch result.Winner {
	case that.human.Mark:
		return that.human.Name + " wins!"
	case that.bot.Mark:
		return that.bot.Name + " wins!"
	default:
		return drawMessage
	}
}
