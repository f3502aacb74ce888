package app

import (
	"context"
	"os"

	"go.uber.org/fx"

	"kadry/internal/app/cli"
	"kadry/internal/app/telemetry"
	"kadry/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli      cli.CLI
	reporter telemetry.Reporter
	done     chan struct{}
	exit     func(code int)
	log      logger.Logger
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, reporter telemetry.Reporter, log logger.Logger) *App {
	return &App{
		cli:      cli,
		reporter: reporter,
		done:     make(chan struct{}),
		exit:     os.Exit,
		log:      log,
	}
}

// Run executes the application and exits the process with the command's exit code
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	// os.Exit skips the fx stop hooks
	a.reporter.Flush()

	a.exit(exitCode)
}

// execute runs the CLI and returns exit code - extracted for testing
func (a *App) execute() int {
	exitCode, err := a.cli.Execute()
	if err != nil {
		a.log.Debug().Err(err).Msgf("Command finished with exit code %d", exitCode)
	}

	return exitCode
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
