package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardState(t *testing.T) {
	// When: a new board state is created
	state := NewBoardState()

	// Then: every cell is empty and player one starts on turn 1
	expected := Snapshot{
		Board:     Board{MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty, MarkEmpty},
		MoveOrder: MoveOrder{},
		Turn:      1,
		Active:    PlayerOneID,
	}

	require.Equal(t, expected, state.Snapshot())
}

func TestBoardState_IsLegal(t *testing.T) {
	t.Run("Out of range positions are illegal", func(t *testing.T) {
		state := NewBoardState()

		for _, position := range []int{-1, 0, 10, 42} {
			assert.False(t, state.IsLegal(position), "position %d", position)
		}
	})

	t.Run("Position stays illegal once occupied", func(t *testing.T) {
		for position := FirstPosition; position <= LastPosition; position++ {
			// Given: an empty board
			state := NewBoardState()
			require.True(t, state.IsLegal(position))

			// When: a move lands on the position
			require.NoError(t, state.ApplyMove(position, MarkX, PlayerOneID))

			// Then: the position is no longer legal, whatever happens next
			assert.False(t, state.IsLegal(position))
			state.AdvanceTurn(PlayerTwoID)
			assert.False(t, state.IsLegal(position))
		}
	})
}

func TestBoardState_ApplyMove(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new board on turn 3
		state := NewBoardState()
		state.AdvanceTurn(PlayerTwoID)
		state.AdvanceTurn(PlayerOneID)

		// When: player two places O at 5
		err := state.ApplyMove(5, MarkO, PlayerTwoID)
		require.NoError(t, err)

		// Then: the cell, the move order and the active participant are updated
		snapshot := state.Snapshot()
		assert.Equal(t, MarkO, snapshot.Board[4])
		assert.Equal(t, 3, snapshot.MoveOrder[4])
		assert.Equal(t, 3, snapshot.Turn)
		assert.Equal(t, PlayerTwoID, snapshot.Active)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player one played 5
		state := NewBoardState()
		require.NoError(t, state.ApplyMove(5, MarkX, PlayerOneID))
		before := state.Snapshot()

		// When: player two plays 5 as well
		err := state.ApplyMove(5, MarkO, PlayerTwoID)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.Equal(t, before, state.Snapshot())
	})

	t.Run("Error on out of range position", func(t *testing.T) {
		state := NewBoardState()

		err := state.ApplyMove(10, MarkX, PlayerOneID)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, NewBoardState().Snapshot(), state.Snapshot())
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		state := NewBoardState()

		err := state.ApplyMove(1, MarkEmpty, PlayerOneID)

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
		assert.True(t, state.IsLegal(1))
	})

	t.Run("Error on unknown participant", func(t *testing.T) {
		state := NewBoardState()

		err := state.ApplyMove(1, MarkX, 3)

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
		assert.True(t, state.IsLegal(1))
	})
}

func TestBoardState_IsFull(t *testing.T) {
	state := NewBoardState()
	assert.False(t, state.IsFull())

	for position := FirstPosition; position <= LastPosition; position++ {
		require.NoError(t, state.ApplyMove(position, MarkFor(position%2+1), position%2+1))
	}

	assert.True(t, state.IsFull())
	assert.Empty(t, state.LegalPositions())
}

func TestBoardState_LegalPositions(t *testing.T) {
	// Given: a board with 1, 5 and 9 taken
	state := NewBoardState()
	require.NoError(t, state.ApplyMove(1, MarkX, PlayerOneID))
	require.NoError(t, state.ApplyMove(5, MarkO, PlayerTwoID))
	require.NoError(t, state.ApplyMove(9, MarkX, PlayerOneID))

	// Then: only the remaining cells are offered
	assert.Equal(t, []int{2, 3, 4, 6, 7, 8}, state.LegalPositions())
}

func TestBoardState_SnapshotRestore(t *testing.T) {
	t.Run("Snapshot is not affected by later moves", func(t *testing.T) {
		// Given: a snapshot of a fresh board
		state := NewBoardState()
		snapshot := state.Snapshot()

		// When: a move is applied
		require.NoError(t, state.ApplyMove(1, MarkX, PlayerOneID))

		// Then: the snapshot still shows an empty cell
		assert.Equal(t, MarkEmpty, snapshot.Board[0])
		assert.Equal(t, 0, snapshot.MoveOrder[0])
	})

	t.Run("Restore overwrites all four fields", func(t *testing.T) {
		// Given: a board with some moves
		state := NewBoardState()
		require.NoError(t, state.ApplyMove(1, MarkX, PlayerOneID))
		state.AdvanceTurn(PlayerTwoID)
		saved := state.Snapshot()
		require.NoError(t, state.ApplyMove(2, MarkO, PlayerTwoID))
		state.AdvanceTurn(PlayerOneID)

		// When: the earlier snapshot is restored
		state.Restore(saved)

		// Then: the state equals the snapshot
		assert.Equal(t, saved, state.Snapshot())
		assert.True(t, state.IsLegal(2))
	})
}
