package tictactoe

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// WinCombos lists rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CheckResult classifies any 9-cell grid, reachable or not. The first complete combo wins.
func CheckResult(cells [entity.BoardSize]entity.Cell) entity.Result {
	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if a != entity.Empty && a == b && b == c {
			return entity.Result{Outcome: entity.Win, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range cells {
		if cell == entity.Empty {
			return entity.Result{Outcome: entity.InProgress}
		}
	}

	return entity.Result{Outcome: entity.Draw}
}
