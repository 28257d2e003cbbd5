package entity

// Cell is the content of one board square.
type Cell string

const (
	Empty Cell = ""
	MarkX Cell = "X"
	MarkO Cell = "O"
)

// IsMark reports whether the cell holds a player's mark.
func (that Cell) IsMark() bool {
	return that == MarkX || that == MarkO
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}
