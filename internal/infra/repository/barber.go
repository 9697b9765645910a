package repository

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/barber"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type barberRepository struct {
	pool *pgxpool.Pool
}

func NewBarberRepository(pool *pgxpool.Pool) commands.BarberRepository {
	return &barberRepository{pool: pool}
}

func (r *barberRepository) Create(ctx context.Context, b *barber.Barber) error {
	const q = `
		INSERT INTO barbers (id, name, active)
		VALUES ($1, $2, $3)
	`
	if _, err := r.pool.Exec(ctx, q, b.ID(), b.Name(), b.IsActive()); err != nil {
		return infra.WrapRepoErr("failed to insert barber", err)
	}
	return nil
}

func (r *barberRepository) Update(ctx context.Context, b *barber.Barber) error {
	const q = `
		UPDATE barbers
		SET name = $2, active = $3, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, q, b.ID(), b.Name(), b.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update barber", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("barber not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *barberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM barbers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete barber", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("barber not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *barberRepository) FindByID(ctx context.Context, id uuid.UUID) (*barber.Barber, error) {
	const q = `
		SELECT id, name, active, created_at, updated_at
		FROM barbers
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, q, id)

	var (
		bID                  uuid.UUID
		name                 string
		active               bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&bID, &name, &active, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find barber", err)
	}
	return barber.ReconstructBarber(bID, name, active, createdAt, updatedAt), nil
}
