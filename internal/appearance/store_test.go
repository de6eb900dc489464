package appearance

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/repository"
)

const darkModeKey = "darkMode"

func detector(value bool) func() bool {
	return func() bool { return value }
}

func TestStore_DarkMode(t *testing.T) {
	t.Run("Falls back to the terminal when nothing is stored", func(t *testing.T) {
		store := NewStore(slog.New(slog.DiscardHandler), repository.NewMemorySlot(), darkModeKey, detector(true))

		assert.True(t, store.DarkMode(t.Context()))
	})

	t.Run("Stored flag wins over the terminal", func(t *testing.T) {
		// Given: a stored light mode flag on a dark terminal
		slot := repository.NewMemorySlot()
		require.NoError(t, slot.Set(t.Context(), darkModeKey, "false"))
		store := NewStore(slog.New(slog.DiscardHandler), slot, darkModeKey, detector(true))

		// When: reading the flag
		darkMode := store.DarkMode(t.Context())

		// Then: the stored value should be used
		assert.False(t, darkMode)
	})

	t.Run("Falls back to the terminal on a garbled flag", func(t *testing.T) {
		slot := repository.NewMemorySlot()
		require.NoError(t, slot.Set(t.Context(), darkModeKey, "maybe"))
		store := NewStore(slog.New(slog.DiscardHandler), slot, darkModeKey, detector(false))

		assert.False(t, store.DarkMode(t.Context()))
	})
}

func TestStore_SetDarkMode(t *testing.T) {
	// Given: an empty slot
	slot := repository.NewMemorySlot()
	store := NewStore(slog.New(slog.DiscardHandler), slot, darkModeKey, detector(false))

	// When: dark mode is switched on
	require.NoError(t, store.SetDarkMode(t.Context(), true))

	// Then: the flag is stored as a string and read back
	raw, err := slot.Get(t.Context(), darkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", raw)
	assert.True(t, store.DarkMode(t.Context()))

	// When: dark mode is switched off again
	require.NoError(t, store.SetDarkMode(t.Context(), false))

	// Then: the flag should follow
	raw, err = slot.Get(t.Context(), darkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "false", raw)
}
