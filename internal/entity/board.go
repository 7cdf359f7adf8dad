package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 9

	FirstPosition = 1
	LastPosition  = BoardSize
)

type Mark byte

const (
	MarkEmpty Mark = ' '
	MarkX     Mark = 'X'
	MarkO     Mark = 'O'
)

func (that Mark) String() string {
	return string(that)
}

// IsValid reports whether the mark can appear on a board.
func (that Mark) IsValid() bool {
	return that == MarkEmpty || that == MarkX || that == MarkO
}

type (
	Board     [BoardSize]Mark
	MoveOrder [BoardSize]int
)

// Snapshot is a value copy of the session at one point in time. Its fields
// are fixed-size arrays, so assigning a Snapshot copies it completely.
type Snapshot struct {
	Board     Board
	MoveOrder MoveOrder
	Turn      int
	Active    int
}

// BoardState is the mutable board of a running session.
type BoardState struct {
	board     Board
	moveOrder MoveOrder
	turn      int
	active    int
}

func NewBoardState() *BoardState {
	state := &BoardState{
		turn:   1,
		active: PlayerOneID,
	}

	for i := range state.board {
		state.board[i] = MarkEmpty
	}

	return state
}

// IsLegal - true when position is in 1..9 and the cell is empty.
func (that *BoardState) IsLegal(position int) bool {
	return position >= FirstPosition && position <= LastPosition && that.board[position-1] == MarkEmpty
}

// ApplyMove - puts mark on position and records the current turn there.
// The state is left unchanged when an error is returned.
func (that *BoardState) ApplyMove(position int, mark Mark, participantID int) error {
	if mark != MarkX && mark != MarkO {
		return fmt.Errorf("%w: mark %q", apperror.ErrInvalidInput, mark)
	}

	if !IsParticipantID(participantID) {
		return fmt.Errorf("%w: participant %d", apperror.ErrInvalidInput, participantID)
	}

	if !that.IsLegal(position) {
		return fmt.Errorf("%w: position %d", apperror.ErrIllegalMove, position)
	}

	that.board[position-1] = mark
	that.moveOrder[position-1] = that.turn
	that.active = participantID

	return nil
}

// AdvanceTurn - moves the session to the next turn with next as the active participant.
func (that *BoardState) AdvanceTurn(next int) {
	that.turn++
	that.active = next
}

func (that *BoardState) SetActive(participantID int) {
	that.active = participantID
}

func (that *BoardState) IsFull() bool {
	for _, cell := range that.board {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

func (that *BoardState) LegalPositions() []int {
	positions := make([]int, 0, BoardSize)
	for position := FirstPosition; position <= LastPosition; position++ {
		if that.IsLegal(position) {
			positions = append(positions, position)
		}
	}

	return positions
}

func (that *BoardState) Snapshot() Snapshot {
	return Snapshot{
		Board:     that.board,
		MoveOrder: that.moveOrder,
		Turn:      that.turn,
		Active:    that.active,
	}
}

func (that *BoardState) Restore(snapshot Snapshot) {
	that.board = snapshot.Board
	that.moveOrder = snapshot.MoveOrder
	that.turn = snapshot.Turn
	that.active = snapshot.Active
}

func (that *BoardState) Board() Board {
	return that.board
}

func (that *BoardState) MoveOrder() MoveOrder {
	return that.moveOrder
}

func (that *BoardState) Turn() int {
	return that.turn
}

func (that *BoardState) Active() int {
	return that.active
}
