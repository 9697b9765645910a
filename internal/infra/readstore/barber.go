package readstore

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type barberReadStore struct {
	pool *pgxpool.Pool
}

func NewBarberReadStore(pool *pgxpool.Pool) queries.BarberReadStore {
	return &barberReadStore{pool: pool}
}

const barberColumns = `id, name, active, created_at`

func (s *barberReadStore) FindAll(ctx context.Context) ([]*queries.BarberView, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+barberColumns+` FROM barbers ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list barbers", err)
	}
	defer rows.Close()
	return collectBarbers(rows)
}

func (s *barberReadStore) FindActive(ctx context.Context) ([]*queries.BarberView, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+barberColumns+` FROM barbers WHERE active ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active barbers", err)
	}
	defer rows.Close()
	return collectBarbers(rows)
}

func (s *barberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BarberView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+barberColumns+` FROM barbers WHERE id = $1`, id)
	view, err := scanBarber(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find barber", err)
	}
	return view, nil
}

func collectBarbers(rows pgx.Rows) ([]*queries.BarberView, error) {
	views := []*queries.BarberView{}
	for rows.Next() {
		view, err := scanBarber(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan barber", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate barbers", err)
	}
	return views, nil
}

func scanBarber(row pgx.Row) (*queries.BarberView, error) {
	var v queries.BarberView
	if err := row.Scan(&v.ID, &v.Name, &v.Active, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
