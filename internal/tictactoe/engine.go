package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// GameEndListener is invoked synchronously when a game reaches a terminal result.
type GameEndListener func(ctx context.Context, result entity.GameResult)

// Outcome describes the state after an accepted placement.
type Outcome struct {
	Result      entity.GameResult
	WinningLine entity.WinningLine
	HasLine     bool
	// Ended is set only on the placement that finished the game.
	Ended bool
}

// Engine owns one game at a time: board, turn, move ledger and the cached result.
// It is not safe for concurrent use.
type Engine struct {
	logger *slog.Logger

	gameID      string
	board       entity.Board
	turn        entity.Mark
	history     []entity.MoveRecord
	result      entity.GameResult
	winningLine entity.WinningLine
	hasLine     bool

	listeners []GameEndListener
}

func NewEngine(logger *slog.Logger) *Engine {
	engine := &Engine{
		logger: logger.With("component", "engine"),
	}
	engine.Reset()

	return engine
}

// OnGameEnd registers a listener. Listeners run in registration order.
func (that *Engine) OnGameEnd(listener GameEndListener) {
	that.listeners = append(that.listeners, listener)
}

// PlaceMark puts the current turn's mark on position.
func (that *Engine) PlaceMark(ctx context.Context, position int) (Outcome, error) {
	if err := that.validateMove(position); err != nil {
		return Outcome{}, err
	}

	mark := that.turn
	that.board[position] = mark
	that.history = append(that.history, entity.MoveRecord{
		Mark:     mark,
		Position: position,
		Board:    that.board,
	})
	that.turn = mark.Opponent()

	that.result, that.winningLine, that.hasLine = Evaluate(that.board)

	outcome := Outcome{
		Result:      that.result,
		WinningLine: that.winningLine,
		HasLine:     that.hasLine,
		Ended:       that.result.IsTerminal(),
	}

	// a terminal game rejects further moves, so this fires at most once per game
	if outcome.Ended {
		that.logger.Info("game ended", "gameID", that.gameID, "result", string(that.result), "moves", len(that.history))
		that.notify(ctx, that.result)
	}

	return outcome, nil
}

// validateMove - checks preconditions in order: range, terminal state, occupancy.
func (that *Engine) validateMove(position int) error {
	if position < 0 || position >= len(that.board) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if that.result.IsTerminal() {
		return apperror.ErrGameAlreadyOver
	}

	if that.board[position] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

func (that *Engine) notify(ctx context.Context, result entity.GameResult) {
	for _, listener := range that.listeners {
		listener(ctx, result)
	}
}

// Reset discards the current game. Listeners are kept and not notified.
func (that *Engine) Reset() {
	that.gameID = uuid.NewString()
	that.board = entity.Board{}
	that.turn = entity.MarkX
	that.history = nil
	that.result = entity.ResultInProgress
	that.winningLine = entity.WinningLine{}
	that.hasLine = false

	that.logger.Debug("new game", "gameID", that.gameID)
}

func (that *Engine) CurrentState() entity.GameState {
	return entity.GameState{
		Board:       that.board,
		Turn:        that.turn,
		Result:      that.result,
		WinningLine: that.winningLine,
		HasLine:     that.hasLine,
	}
}

// History returns a copy of the move ledger in chronological order.
func (that *Engine) History() []entity.MoveRecord {
	history := make([]entity.MoveRecord, len(that.history))
	copy(history, that.history)

	return history
}

// GameID identifies the current game in logs.
func (that *Engine) GameID() string {
	return that.gameID
}
