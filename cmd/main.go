package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"kadry/internal/app"
	"kadry/internal/app/cli"
	"kadry/internal/app/errors"
	"kadry/internal/config"
	"kadry/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	application := createApp(cfg, opts)
	application.Run()
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg.ApplyOverrides(opts.ArticlesPath, opts.Feed)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// isInteractive reports whether the board takes over the terminal
func isInteractive(opts *cli.Options) bool {
	return opts.Type == cli.CommandUI && !opts.NoUI
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	var logOutput io.Writer
	if isInteractive(opts) {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
