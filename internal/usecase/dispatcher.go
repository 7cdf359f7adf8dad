package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	CommandMove = "move"
	CommandSave = "save"
	CommandLoad = "load"
	CommandUndo = "undo"
	CommandRedo = "redo"
	CommandExit = "exit"
	CommandHelp = "help"
)

type terminal interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Println(a ...any)
	RenderBoard(board entity.Board)
	ShowHelp()
}

type historyStack interface {
	Push(snapshot entity.Snapshot)
	Undo() (entity.Snapshot, bool)
	Redo() (entity.Snapshot, bool)
	Save(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
}

type handler func(ctx context.Context, args []string) (bool, error)

// Dispatcher turns one command line into a change of the board state or the history.
// Every handler reports whether a turn-advancing move happened. User mistakes are
// printed and swallowed; only exit, end of input and cancellation come back as errors.
type Dispatcher struct {
	logger   *slog.Logger
	terminal terminal
	state    *entity.BoardState
	history  historyStack

	handlers map[string]handler
}

func NewDispatcher(logger *slog.Logger, terminal terminal, state *entity.BoardState, history historyStack) *Dispatcher {
	dispatcher := &Dispatcher{
		logger:   logger.With("component", "dispatcher"),
		terminal: terminal,
		state:    state,
		history:  history,

		handlers: make(map[string]handler),
	}

	dispatcher.handlers[CommandMove] = dispatcher.handleMove
	dispatcher.handlers[CommandSave] = dispatcher.handleSave
	dispatcher.handlers[CommandLoad] = dispatcher.handleLoad
	dispatcher.handlers[CommandUndo] = dispatcher.handleUndo
	dispatcher.handlers[CommandRedo] = dispatcher.handleRedo
	dispatcher.handlers[CommandExit] = dispatcher.handleExit
	dispatcher.handlers[CommandHelp] = dispatcher.handleHelp

	return dispatcher
}

func (that *Dispatcher) State() *entity.BoardState {
	return that.state
}

// Dispatch - runs one command line and reports whether the turn advanced.
func (that *Dispatcher) Dispatch(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		that.reportUnknown(line)
		return false, nil
	}

	handle, ok := that.handlers[fields[0]]
	if !ok {
		that.reportUnknown(line)
		return false, nil
	}

	that.logger.Debug("dispatching command", "command", fields[0], "turn", that.state.Turn(), "active", that.state.Active())

	return handle(ctx, fields[1:])
}

// PlaceMove - applies a move chosen outside of command parsing and records it.
// Used by automated participants; it always advances the turn on success.
func (that *Dispatcher) PlaceMove(player entity.Player, position int) error {
	if !that.state.IsLegal(position) {
		return fmt.Errorf("%w: position %d", apperror.ErrIllegalMove, position)
	}

	if err := that.state.ApplyMove(position, player.Mark, player.ID); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.history.Push(that.state.Snapshot())

	return nil
}

func (that *Dispatcher) reportUnknown(line string) {
	that.logger.Debug("command rejected", "error", apperror.ErrUnknownCommand, "input", line)
	that.terminal.Println("Unknown command. Type HELP for a list of commands.")
	that.terminal.Println()
}

func (that *Dispatcher) handleMove(ctx context.Context, args []string) (bool, error) {
	player := entity.NewPlayer(that.state.Active())

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		line, err := that.terminal.ReadLine(ctx, "Please enter the position (1 to 9): ")
		if err != nil {
			return false, err
		}
		input = line
	}

	defer func() {
		that.terminal.RenderBoard(that.state.Board())
	}()

	position, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		that.logger.Debug("move rejected", "error", apperror.ErrInvalidInput, "input", input)
		that.terminal.Println("Invalid move. Please enter a number from 1 to 9.")
		return false, nil
	}

	if !that.state.IsLegal(position) {
		that.logger.Debug("move rejected", "error", apperror.ErrIllegalMove, "position", position)
		that.terminal.Println("Invalid move. Cell already occupied or out of range, please try again.")
		return false, nil
	}

	if err = that.PlaceMove(player, position); err != nil {
		that.logger.Error("legal move was not applied", "position", position, "error", err)
		that.terminal.Println("Invalid move, please try again.")
		return false, nil
	}

	return true, nil
}

func (that *Dispatcher) handleSave(ctx context.Context, _ []string) (bool, error) {
	if err := that.history.Save(ctx, that.state.Snapshot()); err != nil {
		that.logger.Error("failed to save game", "error", err)
		that.terminal.Println(fmt.Sprintf("Game state could not be saved: %v", err))
		that.terminal.Println()
		return false, nil
	}

	that.terminal.Println("Game state saved.")
	that.terminal.Println()

	return false, nil
}

func (that *Dispatcher) handleLoad(ctx context.Context, _ []string) (bool, error) {
	defer func() {
		that.terminal.RenderBoard(that.state.Board())
	}()

	snapshot, err := that.history.Load(ctx)
	switch {
	case errors.Is(err, apperror.ErrSaveNotFound), errors.Is(err, apperror.ErrMalformedSave):
		that.logger.Info("no usable saved game", "error", err)
		that.terminal.Println("No saved game found.")
		that.terminal.Println()
		return false, nil
	case err != nil:
		that.logger.Error("failed to load game", "error", err)
		that.terminal.Println(fmt.Sprintf("Game state could not be loaded: %v", err))
		that.terminal.Println()
		return false, nil
	}

	that.state.Restore(snapshot)
	that.terminal.Println("Game state loaded.")
	that.terminal.Println()

	return false, nil
}

// handleUndo - the restored snapshot was recorded by the previous mover, so the
// other participant gets the turn back.
func (that *Dispatcher) handleUndo(_ context.Context, _ []string) (bool, error) {
	defer func() {
		that.terminal.RenderBoard(that.state.Board())
	}()

	previous, ok := that.history.Undo()
	if !ok {
		that.logger.Debug("undo rejected", "error", apperror.ErrNothingToUndo)
		that.terminal.Println("No previous move to undo.")
		that.terminal.Println()
		return false, nil
	}

	that.state.Restore(previous)
	that.state.SetActive(entity.Opponent(previous.Active))

	that.terminal.Println("Last move undone.")
	that.terminal.Println()

	return false, nil
}

func (that *Dispatcher) handleRedo(_ context.Context, _ []string) (bool, error) {
	defer func() {
		that.terminal.RenderBoard(that.state.Board())
	}()

	next, ok := that.history.Redo()
	if !ok {
		that.logger.Debug("redo rejected", "error", apperror.ErrNothingToRedo)
		that.terminal.Println("No move to redo.")
		that.terminal.Println()
		return false, nil
	}

	that.state.Restore(next)

	that.terminal.Println("Move redone.")
	that.terminal.Println()

	return false, nil
}

func (that *Dispatcher) handleExit(_ context.Context, _ []string) (bool, error) {
	return false, apperror.ErrExit
}

func (that *Dispatcher) handleHelp(_ context.Context, _ []string) (bool, error) {
	that.terminal.ShowHelp()
	return false, nil
}
