package opener

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the opener package
var Module = fx.Options(
	fx.Provide(New),
)
