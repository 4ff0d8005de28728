package bootstrap

import (
	"shadow-events-cli/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadStubConfig,
	),
)
