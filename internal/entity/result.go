package entity

type Outcome int

const (
	InProgress Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result is derived from a board snapshot and never stored.
type Result struct {
	Outcome Outcome
	Winner  Cell
}

func (that Result) IsTerminal() bool {
	return that.Outcome != InProgress
}
