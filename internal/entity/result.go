package entity

type Result string

const (
	ResultOngoing Result = "ongoing"
	ResultWinX    Result = "X"
	ResultWinO    Result = "O"
	ResultDraw    Result = "-"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasLine reports whether mark fills one of the win combos.
func (that Board) HasLine(mark Mark) bool {
	if mark == MarkEmpty {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

// Winner returns the mark that completed a line, or MarkEmpty.
func (that Board) Winner() Mark {
	switch {
	case that.HasLine(MarkX):
		return MarkX
	case that.HasLine(MarkO):
		return MarkO
	default:
		return MarkEmpty
	}
}

func (that *BoardState) Winner() Mark {
	return that.board.Winner()
}

// Result - a line wins even when it fills the last empty cell.
func (that *BoardState) Result() Result {
	switch that.Winner() {
	case MarkX:
		return ResultWinX
	case MarkO:
		return ResultWinO
	}

	if that.IsFull() {
		return ResultDraw
	}

	return ResultOngoing
}

func (that Result) IsFinished() bool {
	return that != ResultOngoing
}
