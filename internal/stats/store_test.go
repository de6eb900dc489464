package stats

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

const statsKey = "tictactoe_stats"

var errBroken = errors.New("broken slot")

type brokenSlot struct {
	sets int
}

func (that *brokenSlot) Get(context.Context, string) (string, error) {
	return "", errBroken
}

func (that *brokenSlot) Set(context.Context, string, string) error {
	that.sets++
	return errBroken
}

func newStore(kv slot) *Store {
	return NewStore(slog.New(slog.DiscardHandler), kv, statsKey)
}

func TestStore_Initialize(t *testing.T) {
	t.Run("Starts from zero when nothing is stored", func(t *testing.T) {
		// Given: an empty slot
		store := newStore(repository.NewMemorySlot())

		// When: the store is initialized
		store.Initialize(t.Context())

		// Then: all counters should be zero
		assert.Equal(t, entity.StatsSnapshot{}, store.Snapshot())
	})

	t.Run("Starts from zero when the slot cannot be read", func(t *testing.T) {
		store := newStore(&brokenSlot{})

		store.Initialize(t.Context())

		assert.Equal(t, entity.StatsSnapshot{}, store.Snapshot())
	})

	t.Run("Starts from zero when the stored value is not JSON", func(t *testing.T) {
		// Given: a corrupted stored value
		slot := repository.NewMemorySlot()
		require.NoError(t, slot.Set(t.Context(), statsKey, "{not json"))
		store := newStore(slot)

		// When: the store is initialized
		store.Initialize(t.Context())

		// Then: the counters should fall back to zero
		assert.Equal(t, entity.StatsSnapshot{}, store.Snapshot())
	})

	t.Run("Adopts stored counters", func(t *testing.T) {
		// Given: stored statistics
		slot := repository.NewMemorySlot()
		require.NoError(t, slot.Set(t.Context(), statsKey, `{"xWins":3,"oWins":2,"draws":1,"totalGames":6}`))
		store := newStore(slot)

		// When: the store is initialized
		store.Initialize(t.Context())

		// Then: the counters should match the stored ones
		assert.Equal(t, entity.StatsSnapshot{XWins: 3, OWins: 2, Draws: 1, TotalGames: 6}, store.Snapshot())
	})

	t.Run("Trusts stored counters that break the total", func(t *testing.T) {
		// Given: a tampered value whose total does not add up
		slot := repository.NewMemorySlot()
		require.NoError(t, slot.Set(t.Context(), statsKey, `{"xWins":5,"oWins":0,"draws":0,"totalGames":1}`))
		store := newStore(slot)

		// When: the store is initialized
		store.Initialize(t.Context())

		// Then: the value should be adopted without validation
		assert.Equal(t, entity.StatsSnapshot{XWins: 5, TotalGames: 1}, store.Snapshot())
	})
}

func TestStore_RecordResult(t *testing.T) {
	t.Run("Scenario C: a draw moves the draws counter from 0 to 1", func(t *testing.T) {
		// Given: a fresh store
		slot := repository.NewMemorySlot()
		store := newStore(slot)
		store.Initialize(t.Context())

		// When: a draw is recorded
		err := store.RecordResult(t.Context(), entity.ResultDraw)

		// Then: draws and total should increase and be persisted
		require.NoError(t, err)
		assert.Equal(t, entity.StatsSnapshot{Draws: 1, TotalGames: 1}, store.Snapshot())

		stored, err := slot.Get(t.Context(), statsKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"xWins":0,"oWins":0,"draws":1,"totalGames":1}`, stored)
	})

	t.Run("Keeps the total equal to the sum after every call", func(t *testing.T) {
		// Given: a fresh store
		store := newStore(repository.NewMemorySlot())
		store.Initialize(t.Context())

		results := []entity.GameResult{
			entity.ResultWinX, entity.ResultWinO, entity.ResultDraw,
			entity.ResultWinX, entity.ResultWinX, entity.ResultDraw,
		}

		for _, result := range results {
			// When: each result is recorded
			require.NoError(t, store.RecordResult(t.Context(), result))

			// Then: the invariant should hold
			snapshot := store.Snapshot()
			assert.Equal(t, snapshot.XWins+snapshot.OWins+snapshot.Draws, snapshot.TotalGames)
		}

		assert.Equal(t, entity.StatsSnapshot{XWins: 3, OWins: 1, Draws: 2, TotalGames: 6}, store.Snapshot())
	})

	t.Run("Rejects a game in progress", func(t *testing.T) {
		// Given: a store with an empty slot
		slot := repository.NewMemorySlot()
		store := newStore(slot)
		store.Initialize(t.Context())

		// When: a non-terminal result is recorded
		err := store.RecordResult(t.Context(), entity.ResultInProgress)

		// Then: an ErrNotTerminal error should be returned and nothing persisted
		require.ErrorIs(t, err, ErrNotTerminal)
		assert.Equal(t, entity.StatsSnapshot{}, store.Snapshot())

		_, err = slot.Get(t.Context(), statsKey)
		require.ErrorIs(t, err, repository.ErrSlotNotFound)
	})

	t.Run("Is not idempotent", func(t *testing.T) {
		store := newStore(repository.NewMemorySlot())
		store.Initialize(t.Context())

		require.NoError(t, store.RecordResult(t.Context(), entity.ResultWinO))
		require.NoError(t, store.RecordResult(t.Context(), entity.ResultWinO))

		assert.Equal(t, entity.StatsSnapshot{OWins: 2, TotalGames: 2}, store.Snapshot())
	})

	t.Run("Returns the persistence error but keeps the count", func(t *testing.T) {
		// Given: a slot that fails on write
		slot := &brokenSlot{}
		store := newStore(slot)
		store.Initialize(t.Context())

		// When: a result is recorded
		err := store.RecordResult(t.Context(), entity.ResultWinX)

		// Then: the write error should surface and the counter should still move
		require.ErrorIs(t, err, errBroken)
		assert.Equal(t, 1, slot.sets)
		assert.Equal(t, entity.StatsSnapshot{XWins: 1, TotalGames: 1}, store.Snapshot())
	})
}

func TestStore_HandleGameEnd(t *testing.T) {
	// Given: a slot that fails on write
	store := newStore(&brokenSlot{})
	store.Initialize(t.Context())

	// When: the engine reports a finished game
	store.HandleGameEnd(t.Context(), entity.ResultWinO)

	// Then: the failure is only logged and the counter moves
	assert.Equal(t, entity.StatsSnapshot{OWins: 1, TotalGames: 1}, store.Snapshot())
}

func TestStore_RoundTrip(t *testing.T) {
	// Given: a store backed by sqlite that recorded some games
	ctx, st := suite.NewSQLite(t)
	slot := repository.NewSQLiteSlot(st.SQLite.Connection)

	first := NewStore(st.Logger, slot, statsKey)
	first.Initialize(ctx)
	for _, result := range []entity.GameResult{entity.ResultWinX, entity.ResultDraw, entity.ResultWinO, entity.ResultWinX} {
		require.NoError(t, first.RecordResult(ctx, result))
	}

	// When: a fresh store is initialized from the same slot
	second := NewStore(st.Logger, slot, statsKey)
	second.Initialize(ctx)

	// Then: the counters should be identical
	assert.Equal(t, first.Snapshot(), second.Snapshot())
	assert.Equal(t, entity.StatsSnapshot{XWins: 2, OWins: 1, Draws: 1, TotalGames: 4}, second.Snapshot())
}
