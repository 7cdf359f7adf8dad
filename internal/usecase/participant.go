package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Participant produces the next command or move for its seat.
type Participant interface {
	Player() entity.Player
	TakeTurn(ctx context.Context, dispatcher *Dispatcher) (bool, error)
}

type botService interface {
	ChoosePosition(state *entity.BoardState) (int, error)
}

type Human struct {
	player   entity.Player
	terminal terminal
}

func NewHuman(id int, terminal terminal) *Human {
	return &Human{
		player:   entity.NewPlayer(id),
		terminal: terminal,
	}
}

func (that *Human) Player() entity.Player {
	return that.player
}

// TakeTurn - reads one command line and hands it to the dispatcher.
func (that *Human) TakeTurn(ctx context.Context, dispatcher *Dispatcher) (bool, error) {
	active := dispatcher.State().Active()
	prompt := fmt.Sprintf("Player %d (%s), enter your command (ex: type HELP for a list of commands): ", active, entity.MarkFor(active))

	line, err := that.terminal.ReadLine(ctx, prompt)
	if err != nil {
		return false, err
	}

	return dispatcher.Dispatch(ctx, line)
}

type Computer struct {
	player   entity.Player
	terminal terminal
	bot      botService
}

func NewComputer(id int, terminal terminal, bot botService) *Computer {
	return &Computer{
		player:   entity.NewPlayer(id),
		terminal: terminal,
		bot:      bot,
	}
}

func (that *Computer) Player() entity.Player {
	return that.player
}

// TakeTurn - never parses commands: picks a legal position, plays it and records it.
func (that *Computer) TakeTurn(_ context.Context, dispatcher *Dispatcher) (bool, error) {
	position, err := that.bot.ChoosePosition(dispatcher.State())
	if err != nil {
		return false, fmt.Errorf("bot failed to choose position: %w", err)
	}

	if err = dispatcher.PlaceMove(that.player, position); err != nil {
		return false, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.terminal.Println(fmt.Sprintf("Computer (%s) places at the position %d", that.player.Mark, position))

	return true, nil
}
