package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe/internal/appearance"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/stats"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/ui"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// App owns the storage connection shared by the stats and appearance slots.
type App struct {
	logger *slog.Logger
	conf   *config.Config

	slot   repository.SlotRepository
	closer io.Closer
}

// New - connects to the configured storage.
func New(ctx context.Context, logger *slog.Logger, conf *config.Config) (*App, error) {
	log := logger.With("component", "app")

	app := &App{
		logger: logger,
		conf:   conf,
	}

	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Storage.Redis.GetRedisAddr()
		if redisAddrString == ":" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
			Addr:    redisAddrString,
			DB:      conf.Storage.Redis.DB,
			Timeout: conf.Storage.Redis.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		app.slot = repository.NewRedisSlot(redisStorage.Connection)
		app.closer = redisStorage

	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		app.slot = repository.NewSQLiteSlot(sqliteStorage.Connection)
		app.closer = sqliteStorage

	case config.DriverMemory:
		app.slot = repository.NewMemorySlot()

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, conf.Storage.Driver)
	}

	log.Info("storage ready", "driver", conf.Storage.Driver)

	return app, nil
}

func (that *App) Close() error {
	if that.closer == nil {
		return nil
	}

	if err := that.closer.Close(); err != nil {
		return fmt.Errorf("could not close storage: %w", err)
	}

	return nil
}

func (that *App) newStatsStore() *stats.Store {
	return stats.NewStore(that.logger, that.slot, that.conf.Keys.Stats)
}

// NewModel - builds the game screen on top of a fresh session.
func (that *App) NewModel(ctx context.Context) ui.Model {
	session := usecase.NewSession(ctx, that.logger, tictactoe.NewEngine(that.logger), that.newStatsStore())
	prefs := appearance.NewStore(that.logger, that.slot, that.conf.Keys.Appearance, nil)

	return ui.New(ctx, that.logger, session, prefs, that.conf.UI.ToastDuration)
}

// RunGame - runs the game screen until the player quits.
func (that *App) RunGame(ctx context.Context, opts ...tea.ProgramOption) error {
	log := that.logger.With("component", "app")

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)

	program := tea.NewProgram(that.NewModel(ctx), opts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("game interrupted", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("game screen failed: %w", err)
	}

	log.Info("game closed")

	return nil
}

// PrintStats - writes the persisted statistics with their shares.
func (that *App) PrintStats(ctx context.Context, out io.Writer) error {
	store := that.newStatsStore()
	store.Initialize(ctx)

	snapshot := store.Snapshot()

	heading := color.New(color.Bold)
	rows := []struct {
		label string
		count int
		paint *color.Color
	}{
		{"X wins", snapshot.XWins, color.New(color.FgHiBlue)},
		{"O wins", snapshot.OWins, color.New(color.FgHiMagenta)},
		{"Draws", snapshot.Draws, color.New(color.FgWhite)},
	}

	if _, err := heading.Fprintf(out, "Games played: %d\n", snapshot.TotalGames); err != nil {
		return fmt.Errorf("could not write stats: %w", err)
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(out, "%-8s %s %3d%%\n", row.label, row.paint.Sprintf("%4d", row.count), snapshot.Percent(row.count)); err != nil {
			return fmt.Errorf("could not write stats: %w", err)
		}
	}

	return nil
}
