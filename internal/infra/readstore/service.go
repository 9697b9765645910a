package readstore

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type serviceReadStore struct {
	pool *pgxpool.Pool
}

func NewServiceReadStore(pool *pgxpool.Pool) queries.ServiceReadStore {
	return &serviceReadStore{pool: pool}
}

const serviceColumns = `id, name, duration_min, buffer_after_min, price_cents, active`

func (s *serviceReadStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views := []*queries.ServiceView{}
	for rows.Next() {
		view, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return views, nil
}

func (s *serviceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	view, err := scanService(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return view, nil
}

func scanService(row pgx.Row) (*queries.ServiceView, error) {
	var v queries.ServiceView
	if err := row.Scan(&v.ID, &v.Name, &v.DurationMin, &v.BufferAfterMin, &v.PriceCents, &v.Active); err != nil {
		return nil, err
	}
	return &v, nil
}
