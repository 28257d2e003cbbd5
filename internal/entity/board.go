package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const BoardSize = 9

// Board is the 3x3 grid stored row-major: index = row*3 + col.
type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Cells returns a copy of the grid; mutating it does not affect the board.
func (that *Board) Cells() [BoardSize]Cell {
	return that.cells
}

// PlaceMarker puts mark on an empty cell. On any error the board is left untouched.
func (that *Board) PlaceMarker(index int, mark Cell) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if !mark.IsMark() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that.cells[index] != Empty {
		return apperror.ErrCellOccupied
	}

	that.cells[index] = mark

	return nil
}

func (that *Board) Reset() {
	that.cells = [BoardSize]Cell{}
}
