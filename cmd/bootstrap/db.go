package bootstrap

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra/db"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RunMigrations(pool *pgxpool.Pool, cfg config.Config) error {
	return db.Migrate(context.Background(), pool, cfg.DB.MigrationsPath)
}
