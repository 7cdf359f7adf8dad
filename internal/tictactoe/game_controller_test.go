package tictactoe

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

func firstLegal(legal []int) int {
	return legal[0]
}

// newController builds a controller fed with the given console input.
func newController(t *testing.T, mode entity.Mode, input ...string) (*GameController, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	term := console.New(strings.NewReader(strings.Join(input, "\n")+"\n"), out)
	store := repository.NewFileSlotRepository(filepath.Join(t.TempDir(), "TicTacToe.txt"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	controller, err := NewGameController(logger, term, store, service.NewBotService(firstLegal), mode)
	require.NoError(t, err)

	return controller, out
}

func TestNewGameController(t *testing.T) {
	t.Run("Starts playing with player one", func(t *testing.T) {
		controller, _ := newController(t, entity.ModeHumanVsHuman)

		assert.Equal(t, StatusPlaying, controller.Status())
		assert.Equal(t, entity.NewBoardState().Snapshot(), controller.State().Snapshot())
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		_, err := NewGameController(logger, console.New(strings.NewReader(""), io.Discard), nil, nil, entity.Mode(3))

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})
}

func TestGameController_Run(t *testing.T) {
	t.Run("X completes the top row", func(t *testing.T) {
		// Given: two humans playing X at 1, 2, 3 and O at 4, 5
		controller, out := newController(t, entity.ModeHumanVsHuman,
			"move 1", "move 4", "move 2", "move 5", "move 3")

		// When: the game runs
		result, err := controller.Run(context.Background())

		// Then: player 1 wins
		require.NoError(t, err)
		assert.Equal(t, entity.ResultWinX, result)
		assert.Equal(t, StatusFinished, controller.Status())

		winner, ok := controller.Winner()
		require.True(t, ok)
		assert.Equal(t, entity.PlayerOneID, winner.ID)
		assert.Contains(t, out.String(), "The game is over and player 1 is the WINNER, well done")
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		controller, out := newController(t, entity.ModeHumanVsHuman,
			"move 1", "move 2", "move 3", "move 5", "move 4", "move 6", "move 8", "move 7", "move 9")

		result, err := controller.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, entity.ResultDraw, result)
		_, ok := controller.Winner()
		assert.False(t, ok)
		assert.Contains(t, out.String(), "The game is a draw!")
		assert.Equal(t, 10, controller.State().Turn())
	})

	t.Run("Rejected moves do not advance the turn", func(t *testing.T) {
		// Given: player 2 tries the occupied cell 5 and mistypes before giving up
		controller, out := newController(t, entity.ModeHumanVsHuman,
			"move 5", "move 5", "jump", "help", "exit")

		// When: the game runs
		_, err := controller.Run(context.Background())

		// Then: only the first move landed and it is still player 2's turn
		require.ErrorIs(t, err, apperror.ErrExit)
		state := controller.State()
		assert.Equal(t, 2, state.Turn())
		assert.Equal(t, entity.PlayerTwoID, state.Active())
		assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, state.LegalPositions())
		assert.Contains(t, out.String(), "Player 2 (O), enter your command")
		assert.Equal(t, StatusPlaying, controller.Status())
	})

	t.Run("Human against the computer", func(t *testing.T) {
		// Given: the computer always takes the first free cell
		controller, out := newController(t, entity.ModeHumanVsComputer,
			"move 5", "move 9", "move 3", "move 7")

		// When: the game runs
		result, err := controller.Run(context.Background())

		// Then: the computer played 1, 2 and 4 and X won on the diagonal
		require.NoError(t, err)
		assert.Equal(t, entity.ResultWinX, result)
		board := controller.State().Board()
		assert.Equal(t, entity.MarkO, board[0])
		assert.Equal(t, entity.MarkO, board[1])
		assert.Equal(t, entity.MarkO, board[3])
		assert.Contains(t, out.String(), "Computer (O) places at the position 1")
		assert.Contains(t, out.String(), "player 1 is the WINNER")
	})

	t.Run("Alternation counter and undo can disagree", func(t *testing.T) {
		// Given: X at 1, O at 2, then undo hands the turn back to player 2
		controller, _ := newController(t, entity.ModeHumanVsHuman,
			"move 1", "move 2", "undo", "move 6", "exit")

		// When: player 2 plays again after the undo
		_, err := controller.Run(context.Background())
		require.ErrorIs(t, err, apperror.ErrExit)

		// Then: the counter says the third move belongs to player 1's opponent, so player 2 stays active
		state := controller.State()
		assert.Equal(t, entity.MarkX, state.Board()[0])
		assert.Equal(t, entity.MarkEmpty, state.Board()[1])
		assert.Equal(t, entity.MarkO, state.Board()[5])
		assert.Equal(t, entity.PlayerTwoID, state.Active())
		assert.Equal(t, 3, controller.moves)
	})

	t.Run("Save, play on, load", func(t *testing.T) {
		controller, out := newController(t, entity.ModeHumanVsHuman,
			"move 1", "save", "move 5", "load", "exit")

		_, err := controller.Run(context.Background())

		require.ErrorIs(t, err, apperror.ErrExit)
		state := controller.State()
		assert.Equal(t, entity.MarkX, state.Board()[0])
		assert.True(t, state.IsLegal(5))
		assert.Equal(t, 2, state.Turn())
		assert.Equal(t, entity.PlayerTwoID, state.Active())
		assert.Contains(t, out.String(), "Game state loaded.")
	})

	t.Run("End of input stops the game", func(t *testing.T) {
		controller, _ := newController(t, entity.ModeHumanVsHuman, "move 1")

		_, err := controller.Run(context.Background())

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Cancelled context stops the game", func(t *testing.T) {
		controller, _ := newController(t, entity.ModeHumanVsHuman, "move 1")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := controller.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Finished game accepts nothing more", func(t *testing.T) {
		controller, _ := newController(t, entity.ModeHumanVsHuman,
			"move 1", "move 4", "move 2", "move 5", "move 3", "move 9")
		_, err := controller.Run(context.Background())
		require.NoError(t, err)
		before := controller.State().Snapshot()

		result, err := controller.Run(context.Background())

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.ResultWinX, result)
		assert.Equal(t, before, controller.State().Snapshot())
	})
}
