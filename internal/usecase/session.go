package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameEngine interface {
	PlaceMark(ctx context.Context, position int) (tictactoe.Outcome, error)
	Reset()
	CurrentState() entity.GameState
	History() []entity.MoveRecord
	OnGameEnd(listener tictactoe.GameEndListener)
	GameID() string
}

type statsStore interface {
	Initialize(ctx context.Context)
	HandleGameEnd(ctx context.Context, result entity.GameResult)
	Snapshot() entity.StatsSnapshot
}

// Move is the result of an accepted placement as the view needs it.
type Move struct {
	Outcome tictactoe.Outcome
	Record  entity.MoveRecord
	// Notice is the toast text: the move description, or the result message when the game ended.
	Notice string
}

// Session ties one engine to the statistics for the lifetime of the application.
type Session struct {
	logger *slog.Logger

	engine gameEngine
	stats  statsStore
}

func NewSession(ctx context.Context, logger *slog.Logger, engine gameEngine, stats statsStore) *Session {
	stats.Initialize(ctx)
	engine.OnGameEnd(stats.HandleGameEnd)

	return &Session{
		logger: logger.With("component", "session"),
		engine: engine,
		stats:  stats,
	}
}

func (that *Session) PlaceMark(ctx context.Context, position int) (Move, error) {
	log := that.logger.With("method", "PlaceMark", "gameID", that.engine.GameID(), "position", position)

	outcome, err := that.engine.PlaceMark(ctx, position)
	if err != nil {
		log.Debug("placement rejected", "error", err)
		return Move{}, fmt.Errorf("failed to place mark: %w", err)
	}

	history := that.engine.History()
	record := history[len(history)-1]

	move := Move{
		Outcome: outcome,
		Record:  record,
		Notice:  record.Description(),
	}

	if outcome.Ended {
		move.Notice = outcome.Result.Message()
	}

	return move, nil
}

func (that *Session) NewGame() {
	that.engine.Reset()
}

func (that *Session) State() entity.GameState {
	return that.engine.CurrentState()
}

func (that *Session) History() []entity.MoveRecord {
	return that.engine.History()
}

func (that *Session) Stats() entity.StatsSnapshot {
	return that.stats.Snapshot()
}
