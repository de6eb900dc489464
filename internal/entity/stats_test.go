package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsSnapshot_Record(t *testing.T) {
	t.Run("Counts each terminal result once", func(t *testing.T) {
		// Given: empty statistics
		stats := StatsSnapshot{}

		// When: recording one game of each kind
		assert.True(t, stats.Record(ResultWinX))
		assert.True(t, stats.Record(ResultWinO))
		assert.True(t, stats.Record(ResultDraw))
		assert.True(t, stats.Record(ResultDraw))

		// Then: every counter and the total should match
		assert.Equal(t, StatsSnapshot{XWins: 1, OWins: 1, Draws: 2, TotalGames: 4}, stats)
		assert.Equal(t, stats.TotalGames, stats.XWins+stats.OWins+stats.Draws)
	})

	t.Run("Ignores a game in progress", func(t *testing.T) {
		// Given: statistics with one recorded game
		stats := StatsSnapshot{XWins: 1, TotalGames: 1}

		// When: recording a non-terminal result
		recorded := stats.Record(ResultInProgress)

		// Then: nothing should change
		assert.False(t, recorded)
		assert.Equal(t, StatsSnapshot{XWins: 1, TotalGames: 1}, stats)
	})
}

func TestStatsSnapshot_Percent(t *testing.T) {
	t.Run("Guards against zero games", func(t *testing.T) {
		stats := StatsSnapshot{}

		assert.Equal(t, 0, stats.Percent(stats.XWins))
	})

	t.Run("Rounds to the nearest integer", func(t *testing.T) {
		stats := StatsSnapshot{XWins: 1, OWins: 1, Draws: 1, TotalGames: 3}

		assert.Equal(t, 33, stats.Percent(stats.XWins))
	})

	t.Run("Rounds halves up", func(t *testing.T) {
		stats := StatsSnapshot{XWins: 1, OWins: 7, TotalGames: 8}

		assert.Equal(t, 13, stats.Percent(stats.XWins))
		assert.Equal(t, 88, stats.Percent(stats.OWins))
	})
}
