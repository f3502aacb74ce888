package app

import (
	"go.uber.org/fx"

	"kadry/internal/app/articles"
	"kadry/internal/app/cli"
	"kadry/internal/app/opener"
	"kadry/internal/app/telemetry"
	"kadry/internal/app/ui/wire"
)

// Module wires the application: article source, board UI, CLI and error reporting
var Module = fx.Options(
	articles.Module,
	opener.Module,
	telemetry.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
