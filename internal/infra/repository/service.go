package repository

import (
	"context"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/service"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type serviceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) commands.ServiceRepository {
	return &serviceRepository{pool: pool}
}

func (r *serviceRepository) Create(ctx context.Context, s *service.Service) error {
	const q = `
		INSERT INTO services (id, name, duration_min, buffer_after_min, price_cents, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, q, s.ID(), s.Name(), s.DurationMin(), s.BufferAfterMin(), s.PriceCents(), s.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to insert service", err)
	}
	return nil
}

func (r *serviceRepository) Update(ctx context.Context, s *service.Service) error {
	const q = `
		UPDATE services
		SET name = $2, duration_min = $3, buffer_after_min = $4, price_cents = $5, active = $6, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, q, s.ID(), s.Name(), s.DurationMin(), s.BufferAfterMin(), s.PriceCents(), s.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	const q = `
		SELECT id, name, duration_min, buffer_after_min, price_cents, active, created_at, updated_at
		FROM services
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, q, id)

	var (
		sID                    uuid.UUID
		name                   string
		durationMin, bufferMin int
		priceCents             int64
		active                 bool
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&sID, &name, &durationMin, &bufferMin, &priceCents, &active, &createdAt, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return service.ReconstructService(sID, name, durationMin, bufferMin, priceCents, active, createdAt, updatedAt), nil
}
