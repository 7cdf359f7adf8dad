package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/history"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

type Status string

const (
	StatusSetup    Status = "setup"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

type terminal interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Println(a ...any)
	RenderBoard(board entity.Board)
	ShowHelp()
}

type slotStore interface {
	Save(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
}

type botService interface {
	ChoosePosition(state *entity.BoardState) (int, error)
}

// GameController drives one session from setup to the final result.
type GameController struct {
	logger   *slog.Logger
	terminal terminal

	state      *entity.BoardState
	history    *history.Stack
	dispatcher *usecase.Dispatcher
	players    [2]usecase.Participant

	// moves counts turn-advancing commands. It alone decides whose turn comes
	// next, whatever undo or redo did to the active participant.
	moves  int
	status Status
	result entity.Result
}

func NewGameController(
	logger *slog.Logger,
	terminal terminal,
	store slotStore,
	bot botService,
	mode entity.Mode,
	opts ...history.Option,
) (*GameController, error) {
	controller := &GameController{
		logger:   logger.With("component", "game_controller"),
		terminal: terminal,
		status:   StatusSetup,
		result:   entity.ResultOngoing,
	}

	if err := controller.setup(store, bot, mode, opts...); err != nil {
		return nil, err
	}

	return controller, nil
}

func (that *GameController) setup(store slotStore, bot botService, mode entity.Mode, opts ...history.Option) error {
	switch mode {
	case entity.ModeHumanVsHuman:
		that.players = [2]usecase.Participant{
			usecase.NewHuman(entity.PlayerOneID, that.terminal),
			usecase.NewHuman(entity.PlayerTwoID, that.terminal),
		}
	case entity.ModeHumanVsComputer:
		that.players = [2]usecase.Participant{
			usecase.NewHuman(entity.PlayerOneID, that.terminal),
			usecase.NewComputer(entity.PlayerTwoID, that.terminal, bot),
		}
	default:
		return fmt.Errorf("%w: mode %d", apperror.ErrInvalidInput, mode)
	}

	that.state = entity.NewBoardState()
	that.state.SetActive(that.players[0].Player().ID)
	that.history = history.New(that.logger, store, that.state.Snapshot(), opts...)
	that.dispatcher = usecase.NewDispatcher(that.logger, that.terminal, that.state, that.history)

	that.status = StatusPlaying
	that.logger.Info("game initialized", "mode", mode.String())

	return nil
}

// Run - plays until a line is completed or the board is full. It stops early on
// exit, end of input or ctx cancellation and returns that error.
func (that *GameController) Run(ctx context.Context) (entity.Result, error) {
	if that.status == StatusFinished {
		return that.result, apperror.ErrGameFinished
	}

	for !that.endOfGame() {
		if err := ctx.Err(); err != nil {
			return entity.ResultOngoing, err
		}

		that.terminal.RenderBoard(that.state.Board())

		participant := that.participant(that.state.Active())

		moveMade, err := participant.TakeTurn(ctx, that.dispatcher)
		if err != nil {
			return entity.ResultOngoing, fmt.Errorf("turn %d: %w", that.state.Turn(), err)
		}

		// the turn only changes when a move was made
		if moveMade {
			that.changeTurn()
		}
	}

	that.finish()

	return that.result, nil
}

func (that *GameController) Status() Status {
	return that.status
}

func (that *GameController) State() *entity.BoardState {
	return that.state
}

// Winner returns the participant owning the winning mark once the game is finished.
func (that *GameController) Winner() (entity.Player, bool) {
	for _, participant := range that.players {
		player := participant.Player()
		if that.status == StatusFinished && that.state.Winner() == player.Mark {
			return player, true
		}
	}

	return entity.Player{}, false
}

func (that *GameController) participant(id int) usecase.Participant {
	for _, participant := range that.players {
		if participant.Player().ID == id {
			return participant
		}
	}

	return that.players[0]
}

func (that *GameController) changeTurn() {
	that.moves++
	next := that.players[that.moves%len(that.players)].Player().ID
	that.state.AdvanceTurn(next)

	that.logger.Debug("turn changed", "turn", that.state.Turn(), "active", next)
}

func (that *GameController) endOfGame() bool {
	return that.state.Result().IsFinished()
}

func (that *GameController) finish() {
	that.status = StatusFinished
	that.result = that.state.Result()

	that.terminal.RenderBoard(that.state.Board())
	that.terminal.Println("The game is over")

	if winner, ok := that.Winner(); ok {
		that.terminal.Println(fmt.Sprintf("The game is over and player %d is the WINNER, well done", winner.ID))
	} else {
		that.terminal.Println("The game is a draw!")
	}

	that.logger.Info("game finished", "result", string(that.result), "turn", that.state.Turn())
}
