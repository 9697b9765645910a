package db

import (
	"context"
	"log/slog"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies pending goose migrations from migrationsPath. Goose
// needs a *sql.DB, so one is borrowed from the pool for the duration.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrationsPath string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set goose dialect")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Warn("failed to close migration connection", "error", err)
		}
	}()

	if err := goose.UpContext(ctx, sqlDB, migrationsPath); err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errs.Wrap(err, "failed to read migration version")
	}
	slog.Info("database migrations applied", "version", version)

	return nil
}
