package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

func TestHuman_TakeTurn(t *testing.T) {
	t.Run("Reads a command and dispatches it", func(t *testing.T) {
		// Given: player 1 will type "move" then "7"
		f := newFixture(t, "move\n7\n")
		human := NewHuman(entity.PlayerOneID, f.dispatcher.terminal)

		// When: the human takes a turn
		advanced, err := human.TakeTurn(context.Background(), f.dispatcher)

		// Then: X is on 7
		require.NoError(t, err)
		assert.True(t, advanced)
		assert.Equal(t, entity.MarkX, f.state.Board()[6])
		assert.Contains(t, f.out.String(), "Player 1 (X), enter your command")
	})

	t.Run("Prompt follows the active participant", func(t *testing.T) {
		f := newFixture(t, "help\n")
		f.state.SetActive(entity.PlayerTwoID)
		human := NewHuman(entity.PlayerOneID, f.dispatcher.terminal)

		advanced, err := human.TakeTurn(context.Background(), f.dispatcher)

		require.NoError(t, err)
		assert.False(t, advanced)
		assert.Contains(t, f.out.String(), "Player 2 (O), enter your command")
	})
}

func TestComputer_TakeTurn(t *testing.T) {
	t.Run("Plays the chosen position and records it", func(t *testing.T) {
		// Given: a computer in seat 2 that always takes the first legal cell
		f := newFixture(t, "")
		f.move(t, "1")
		bot := service.NewBotService(func(legal []int) int { return legal[0] })
		computer := NewComputer(entity.PlayerTwoID, f.dispatcher.terminal, bot)

		// When: the computer takes its turn
		advanced, err := computer.TakeTurn(context.Background(), f.dispatcher)

		// Then: O is on 2 and the move is in the history
		require.NoError(t, err)
		assert.True(t, advanced)
		assert.Equal(t, entity.MarkO, f.state.Board()[1])
		assert.Equal(t, entity.PlayerTwoID, f.state.Active())
		assert.Equal(t, f.state.Snapshot(), f.history.Current())
		assert.Contains(t, f.out.String(), "Computer (O) places at the position 2")
	})

	t.Run("Error when no move is possible", func(t *testing.T) {
		f := newFixture(t, "")
		for position := entity.FirstPosition; position <= entity.LastPosition; position++ {
			require.NoError(t, f.state.ApplyMove(position, entity.MarkX, entity.PlayerOneID))
		}
		computer := NewComputer(entity.PlayerTwoID, f.dispatcher.terminal, service.NewBotService(nil))

		advanced, err := computer.TakeTurn(context.Background(), f.dispatcher)

		require.ErrorIs(t, err, service.ErrNoAvailableMoves)
		assert.False(t, advanced)
	})
}
