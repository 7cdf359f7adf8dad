package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// SelectMode asks for the mode of play until the user picks 1 or 2 and confirms with y.
func (that *Console) SelectMode(ctx context.Context) (entity.Mode, error) {
	for {
		that.Println("Welcome to the board game Tic Tac Toe")
		that.Println("Please choose one option from the list provided to start the game")
		that.Printf("%d. %s\n", entity.ModeHumanVsHuman, entity.ModeHumanVsHuman)
		that.Printf("%d. %s\n", entity.ModeHumanVsComputer, entity.ModeHumanVsComputer)

		mode, err := that.readMode(ctx)
		if err != nil {
			return 0, err
		}

		answer, err := that.ReadLine(ctx, fmt.Sprintf("You confirmed to select %s\nPlease type y to start or any key to choose your option again", mode))
		if err != nil {
			return 0, err
		}

		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			return mode, nil
		}
	}
}

func (that *Console) readMode(ctx context.Context) (entity.Mode, error) {
	prompt := "Please enter number 1 or 2 only"

	for {
		input, err := that.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		option, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && entity.Mode(option).IsValid() {
			return entity.Mode(option), nil
		}

		prompt = "Invalid option selected. Please choose one mode of play 1 or 2"
	}
}
