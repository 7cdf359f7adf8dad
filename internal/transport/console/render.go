package console

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const separator = "----+---+---"

var guide = entity.Board{'1', '2', '3', '4', '5', '6', '7', '8', '9'}

// RenderBoard prints the position guide followed by the board itself.
func (that *Console) RenderBoard(board entity.Board) {
	that.Println()
	that.Println("Each player takes a turn placing an X or an O in a cell, three in a row wins.")
	that.Println("Positions:")
	that.printGrid(guide)
	that.printGrid(board)
}

func (that *Console) printGrid(board entity.Board) {
	that.Println(separator)
	for row := 0; row < 3; row++ {
		that.Printf("| %c | %c | %c |\n", board[row*3], board[row*3+1], board[row*3+2])
		that.Println(separator)
	}
	that.Println()
}

func (that *Console) ShowHelp() {
	that.Println("Commands:")
	that.Println("MOVE - Play a turn (MOVE 5 plays position 5 directly)")
	that.Println("UNDO - Undo the last turn")
	that.Println("REDO - Redo the last turn")
	that.Println("SAVE - Saves the game state")
	that.Println("LOAD - Loads the saved game state")
	that.Println("HELP - Shows this list")
	that.Println("EXIT - Exits the game")
}
