package bootstrap

import (
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
