package commands

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/barber"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type BarberCommands interface {
	Create(ctx context.Context, name string) (*queries.BarberView, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*queries.BarberView, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*queries.BarberView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type barberCommandsImpl struct {
	repo   BarberRepository
	reader queries.BarberReadStore
}

func NewBarberCommands(repo BarberRepository, reader queries.BarberReadStore) BarberCommands {
	return &barberCommandsImpl{repo: repo, reader: reader}
}

func (c *barberCommandsImpl) Create(ctx context.Context, name string) (*queries.BarberView, error) {
	b, err := barber.NewBarber(name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, b.ID())
}

func (c *barberCommandsImpl) Rename(ctx context.Context, id uuid.UUID, name string) (*queries.BarberView, error) {
	b, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrBarberNotFound)
	}
	if err := b.Rename(name); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, id)
}

func (c *barberCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) (*queries.BarberView, error) {
	b, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrBarberNotFound)
	}
	if active {
		b.Activate()
	} else {
		b.Deactivate()
	}
	if err := c.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, id)
}

func (c *barberCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := c.repo.FindByID(ctx, id); err != nil {
		return markNotFound(err, errs.ErrBarberNotFound)
	}
	return c.repo.Delete(ctx, id)
}
