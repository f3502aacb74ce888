package telemetry

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the telemetry package
var Module = fx.Options(
	fx.Provide(NewReporter),
	fx.Invoke(Register),
)

// Register flushes pending reports when the application stops
func Register(lc fx.Lifecycle, reporter Reporter) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			reporter.Flush()
			return nil
		},
	})
}
