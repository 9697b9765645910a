package repository

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/client"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) commands.ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	const q = `
		INSERT INTO clients (id, name, phone, email)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.pool.Exec(ctx, q, c.ID(), c.Name(), c.Phone(), c.Email()); err != nil {
		return infra.WrapRepoErr("failed to insert client", err)
	}
	return nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	const q = `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, q, c.ID(), c.Name(), c.Phone(), c.Email())
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	const q = `
		SELECT id, name, phone, COALESCE(email, ''), created_at, updated_at
		FROM clients
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, q, id)

	var (
		cID                  uuid.UUID
		name, phone, email   string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&cID, &name, &phone, &email, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	return client.ReconstructClient(cID, name, phone, email, createdAt, updatedAt), nil
}
