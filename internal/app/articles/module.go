package articles

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the articles package
var Module = fx.Options(
	fx.Provide(NewSource),
)
