package service

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Chooser picks one of the legal positions. legal is never empty.
type Chooser func(legal []int) int

// RandomChooser picks uniformly among the legal positions.
func RandomChooser() Chooser {
	return func(legal []int) int {
		return legal[rand.IntN(len(legal))] //nolint: gosec // it's ok
	}
}

type BotService interface {
	ChoosePosition(state *entity.BoardState) (int, error)
}

type botService struct {
	choose Chooser
}

func NewBotService(choose Chooser) BotService {
	if choose == nil {
		choose = RandomChooser()
	}

	return &botService{
		choose: choose,
	}
}

func (that *botService) ChoosePosition(state *entity.BoardState) (int, error) {
	availableCells := state.LegalPositions()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	chosenCell := that.choose(availableCells)
	if !state.IsLegal(chosenCell) {
		return 0, fmt.Errorf("%w: bot chose position %d", apperror.ErrIllegalMove, chosenCell)
	}

	return chosenCell, nil
}
