package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

const defaultConfigPath = "./config.yml"

// main - is the entry point of the application. It wires the commands and runs the selected one.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	ephemeral  bool
}

func rootCmd() *cobra.Command {
	opts := &flags{}

	play := playCmd(opts)

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player tic-tac-toe in the terminal",
		Long: `Two players take turns on one keyboard. Results are kept across runs
together with the preferred color theme.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          play.RunE,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to the config file")
	root.PersistentFlags().BoolVar(&opts.ephemeral, "ephemeral", false, "keep statistics and theme in memory only")

	root.AddCommand(play)
	root.AddCommand(statsCmd(opts))

	return root
}

func playCmd(opts *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the game screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, application *app.App) error {
				return application.RunGame(ctx)
			})
		},
	}
}

func statsCmd(opts *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the persisted game statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, application *app.App) error {
				return application.PrintStats(ctx, cmd.OutOrStdout())
			})
		},
	}
}

func withApp(ctx context.Context, opts *flags, run func(context.Context, *app.App) error) error {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	if opts.ephemeral {
		conf.Storage.Driver = config.DriverMemory
	}

	logger, logFile, err := initLogger(conf)
	if err != nil {
		return err
	}
	defer logFile.Close()

	application, err := app.New(ctx, logger, conf)
	if err != nil {
		return fmt.Errorf("app init failed: %w", err)
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			logger.Error("failed to close app", "error", closeErr)
		}
	}()

	return run(ctx, application)
}

// initialize logger. The game screen owns the terminal, so records go to a file.
func initLogger(conf *config.Config) (*slog.Logger, io.Closer, error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), file, nil
}
