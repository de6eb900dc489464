package entity

import "fmt"

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Opponent returns the mark that plays after this one.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

const BoardSize = 9

// Board is a row-major 3x3 grid. It is a value type, so every copy is a snapshot.
type Board [BoardSize]Mark

// IsFull reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// GameResult is derived from the board after every accepted placement.
type GameResult string

const (
	ResultInProgress GameResult = ""
	ResultWinX       GameResult = "X"
	ResultWinO       GameResult = "O"
	ResultDraw       GameResult = "-"
)

// WinFor maps a winning mark onto its result.
func WinFor(mark Mark) GameResult {
	if mark == MarkX {
		return ResultWinX
	}
	return ResultWinO
}

func (that GameResult) IsTerminal() bool {
	return that == ResultWinX || that == ResultWinO || that == ResultDraw
}

// Message is the notification text shown once a game ends.
func (that GameResult) Message() string {
	switch that {
	case ResultWinX, ResultWinO:
		return fmt.Sprintf("Player %s wins the game!", string(that))
	case ResultDraw:
		return "The game ended in a draw!"
	default:
		return ""
	}
}

// Status is the board status line for a game whose next mover is turn.
func (that GameResult) Status(turn Mark) string {
	switch that {
	case ResultWinX, ResultWinO:
		return fmt.Sprintf("Player %s wins!", string(that))
	case ResultDraw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("Next player: %s", string(turn))
	}
}

// WinningLine holds the three positions of a completed row, column or diagonal.
type WinningLine [3]int

// Contains reports whether position is part of the line.
func (that WinningLine) Contains(position int) bool {
	for _, p := range that {
		if p == position {
			return true
		}
	}
	return false
}

// MoveRecord is one accepted placement together with the board it produced.
type MoveRecord struct {
	Mark     Mark  `json:"mark"`
	Position int   `json:"position"`
	Board    Board `json:"board"`
}

// Description renders the move with a 1-based square number.
func (that MoveRecord) Description() string {
	return fmt.Sprintf("Player %s marked square %d", string(that.Mark), that.Position+1)
}

// GameState is a read-only view of the engine.
type GameState struct {
	Board       Board       `json:"board"`
	Turn        Mark        `json:"turn"`
	Result      GameResult  `json:"result"`
	WinningLine WinningLine `json:"winning_line"`
	HasLine     bool        `json:"has_line"`
}

// IsFinished reports whether the game accepts no more placements.
func (that GameState) IsFinished() bool {
	return that.Result.IsTerminal()
}
