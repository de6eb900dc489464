package appearance

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/muesli/termenv"
)

type slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store persists the dark mode flag as "true" or "false".
type Store struct {
	logger *slog.Logger
	slot   slot
	key    string

	// detect is consulted when no flag has been stored yet.
	detect func() bool
}

// NewStore falls back to the terminal background when detect is nil.
func NewStore(logger *slog.Logger, slot slot, key string, detect func() bool) *Store {
	if detect == nil {
		detect = termenv.HasDarkBackground
	}

	return &Store{
		logger: logger.With("component", "appearance"),
		slot:   slot,
		key:    key,
		detect: detect,
	}
}

func (that *Store) DarkMode(ctx context.Context) bool {
	raw, err := that.slot.Get(ctx, that.key)
	if err != nil {
		return that.detect()
	}

	darkMode, err := strconv.ParseBool(raw)
	if err != nil {
		that.logger.Warn("unexpected dark mode flag", "value", raw, "error", err)
		return that.detect()
	}

	return darkMode
}

func (that *Store) SetDarkMode(ctx context.Context, darkMode bool) error {
	if err := that.slot.Set(ctx, that.key, strconv.FormatBool(darkMode)); err != nil {
		return fmt.Errorf("failed to save dark mode flag: %w", err)
	}

	return nil
}
