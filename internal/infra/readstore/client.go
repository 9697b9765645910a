package readstore

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientReadStore struct {
	pool *pgxpool.Pool
}

func NewClientReadStore(pool *pgxpool.Pool) queries.ClientReadStore {
	return &clientReadStore{pool: pool}
}

const clientColumns = `id, name, phone, COALESCE(email, ''), created_at`

func (s *clientReadStore) FindAll(ctx context.Context) ([]*queries.ClientView, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	views := []*queries.ClientView{}
	for rows.Next() {
		view, err := scanClient(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan client", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate clients", err)
	}
	return views, nil
}

func (s *clientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	view, err := scanClient(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	return view, nil
}

func scanClient(row pgx.Row) (*queries.ClientView, error) {
	var v queries.ClientView
	if err := row.Scan(&v.ID, &v.Name, &v.Phone, &v.Email, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
