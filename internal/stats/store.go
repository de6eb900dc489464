package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrNotTerminal = errors.New("result is not terminal")

type slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store keeps the cumulative statistics and writes them through after every game.
type Store struct {
	logger *slog.Logger
	slot   slot
	key    string

	snapshot entity.StatsSnapshot
}

func NewStore(logger *slog.Logger, slot slot, key string) *Store {
	return &Store{
		logger: logger.With("component", "stats"),
		slot:   slot,
		key:    key,
	}
}

// Initialize loads the persisted counters. Missing or unreadable data means zero counters.
// Stored values are adopted as they are, even if they break the total invariant.
func (that *Store) Initialize(ctx context.Context) {
	log := that.logger.With("method", "Initialize")

	that.snapshot = entity.StatsSnapshot{}

	raw, err := that.slot.Get(ctx, that.key)
	if err != nil {
		log.Debug("no stored stats, starting from zero", "error", err)
		return
	}

	var stored entity.StatsSnapshot
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Warn("failed to unmarshal stored stats, starting from zero", "error", err)
		return
	}

	that.snapshot = stored
}

// RecordResult counts a finished game and persists the snapshot.
// It is not idempotent: every call counts one more game.
func (that *Store) RecordResult(ctx context.Context, result entity.GameResult) error {
	if !that.snapshot.Record(result) {
		return fmt.Errorf("%w: %q", ErrNotTerminal, string(result))
	}

	statsJSON, err := json.Marshal(that.snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal stats: %w", err)
	}

	if err = that.slot.Set(ctx, that.key, string(statsJSON)); err != nil {
		return fmt.Errorf("failed to persist stats: %w", err)
	}

	return nil
}

// HandleGameEnd records the result on behalf of the engine, which has no use for the error.
func (that *Store) HandleGameEnd(ctx context.Context, result entity.GameResult) {
	if err := that.RecordResult(ctx, result); err != nil {
		that.logger.Error("failed to record game result", "result", string(result), "error", err)
	}
}

func (that *Store) Snapshot() entity.StatsSnapshot {
	return that.snapshot
}
