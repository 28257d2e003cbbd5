package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	NoMove = -1

	scoreBotWin   = 1
	scoreHumanWin = -1
	scoreDraw     = 0
)

// GetBestMove returns the lowest-index move with the best worst-case outcome for botMark.
// The search runs on its own copy of cells, so the caller's grid is never touched.
func GetBestMove(cells [entity.BoardSize]entity.Cell, botMark entity.Cell) (int, error) {
	if !botMark.IsMark() {
		return NoMove, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, botMark)
	}

	bestScore := scoreHumanWin - 1
	bestMove := NoMove

	for i := range cells {
		if cells[i] != entity.Empty {
			continue
		}

		cells[i] = botMark
		score := minimax(&cells, botMark, false)
		cells[i] = entity.Empty

		if score > bestScore {
			bestScore = score
			bestMove = i
		}
	}

	if bestMove == NoMove {
		return NoMove, apperror.ErrNoAvailableMoves
	}

	return bestMove, nil
}

// minimax scores a position from the bot's side. Scores are not discounted by depth.
func minimax(cells *[entity.BoardSize]entity.Cell, botMark entity.Cell, isBotTurn bool) int {
	if result := CheckResult(*cells); result.IsTerminal() {
		return score(result, botMark)
	}

	mark := botMark.Opponent()
	bestScore := scoreBotWin + 1
	if isBotTurn {
		mark = botMark
		bestScore = scoreHumanWin - 1
	}

	for i := range cells {
		if cells[i] != entity.Empty {
			continue
		}

		cells[i] = mark
		childScore := minimax(cells, botMark, !isBotTurn)
		cells[i] = entity.Empty

		if isBotTurn {
			bestScore = max(bestScore, childScore)
		} else {
			bestScore = min(bestScore, childScore)
		}
	}

	return bestScore
}

func score(result entity.Result, botMark entity.Cell) int {
	switch {
	case result.Outcome == entity.Draw:
		return scoreDraw
	case result.Winner == botMark:
		return scoreBotWin
	default:
		return scoreHumanWin
	}
}
