package tictactoe

import "github.com/rocketscienceinc/tictactoe/internal/entity"

// WinCombos lists every row, column and diagonal in evaluation order.
var WinCombos = [8]entity.WinningLine{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate rescans the whole board. The first completed combo wins; a full board
// without one is a draw. The returned line is only meaningful when ok is true.
func Evaluate(board entity.Board) (entity.GameResult, entity.WinningLine, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.WinFor(a), combo, true
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.ResultInProgress, entity.WinningLine{}, false
	}

	return entity.ResultDraw, entity.WinningLine{}, false
}
