package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.Empty
)

func TestCheckResult(t *testing.T) {
	t.Run("Winner X on column", func(t *testing.T) {
		// Given: X holds the left column
		board := [9]entity.Cell{x, o, e, x, o, e, x, e, e}

		// When: checking the result
		result := CheckResult(board)

		// Then: X should be declared the winner
		assert.Equal(t, entity.Result{Outcome: entity.Win, Winner: x}, result)
	})

	t.Run("Winner O on row", func(t *testing.T) {
		// Given: O holds the bottom row
		board := [9]entity.Cell{x, x, e, x, e, e, o, o, o}

		// When: checking the result
		result := CheckResult(board)

		// Then: O should be declared the winner
		assert.Equal(t, entity.Result{Outcome: entity.Win, Winner: o}, result)
	})

	t.Run("Anti-diagonal detected with open corner", func(t *testing.T) {
		// Given: X holds 2, 4 and 6 while 7 and 8 are empty
		board := [9]entity.Cell{x, o, x, o, x, o, x, e, e}

		// When: checking the result
		result := CheckResult(board)

		// Then: X should be declared the winner
		assert.Equal(t, entity.Result{Outcome: entity.Win, Winner: x}, result)
	})

	t.Run("Main diagonal only when cell 8 is X", func(t *testing.T) {
		// Given: X holds 0 and 4 but cell 8 is empty
		board := [9]entity.Cell{x, o, x, o, x, o, o, e, e}

		// When: checking the result
		result := CheckResult(board)

		// Then: the game should continue
		assert.Equal(t, entity.InProgress, result.Outcome)

		// When: X takes cell 8
		board[8] = x

		// Then: the diagonal should be detected
		assert.Equal(t, entity.Result{Outcome: entity.Win, Winner: x}, CheckResult(board))
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a board without any complete line
		board := [9]entity.Cell{x, o, x, e, o, e, x, e, e}

		// When: checking the result
		result := CheckResult(board)

		// Then: the game should continue
		assert.Equal(t, entity.Result{Outcome: entity.InProgress}, result)
		assert.False(t, result.IsTerminal())
	})

	t.Run("Empty board", func(t *testing.T) {
		assert.Equal(t, entity.InProgress, CheckResult([9]entity.Cell{}).Outcome)
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: two full boards without three in a row
		boards := [][9]entity.Cell{
			{o, x, o, o, x, x, x, o, x},
			{x, o, x, x, o, o, o, x, x},
		}

		for _, board := range boards {
			// When: checking the result
			result := CheckResult(board)

			// Then: the game should be declared a draw
			assert.Equal(t, entity.Result{Outcome: entity.Draw}, result)
			assert.True(t, result.IsTerminal())
		}
	})

	t.Run("Full board with a line is a win", func(t *testing.T) {
		// Given: a full board where X completed the top row on the last move
		board := [9]entity.Cell{x, x, x, o, o, x, x, o, o}

		// Then: win takes precedence over draw
		assert.Equal(t, entity.Result{Outcome: entity.Win, Winner: x}, CheckResult(board))
	})

	t.Run("Unreachable board reports first combo", func(t *testing.T) {
		// Given: both marks hold a row, which cannot happen in play
		board := [9]entity.Cell{e, e, e, o, o, o, x, x, x}

		// When: checking the result
		result := CheckResult(board)

		// Then: the row listed first wins
		assert.Equal(t, entity.Result{Outcome: entity.Win, Winner: o}, result)
	})
}

func TestCheckResult_AllCombos(t *testing.T) {
	for _, combo := range WinCombos {
		for _, mark := range []entity.Cell{x, o} {
			// Given: only the combo is filled
			var board [9]entity.Cell
			for _, i := range combo {
				board[i] = mark
			}

			// Then: the mark owning it wins
			assert.Equal(t, entity.Result{Outcome: entity.Win, Winner: mark}, CheckResult(board), "combo %v", combo)

			// When: one cell of the combo belongs to the opponent
			board[combo[1]] = mark.Opponent()

			// Then: nobody wins
			assert.Equal(t, entity.InProgress, CheckResult(board).Outcome, "combo %v", combo)
		}
	}
}
