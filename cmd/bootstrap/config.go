package bootstrap

import (
	"lendit/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads the whole configuration from the environment once at
// startup; nothing re-reads env vars after boot.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
