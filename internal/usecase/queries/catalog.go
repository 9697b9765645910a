package queries

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type ClientReadStore interface {
	FindAll(ctx context.Context) ([]*ClientView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
}

// CatalogQueries serves the directory screens: barbers, services and
// clients.
type CatalogQueries interface {
	ListBarbers(ctx context.Context) ([]*BarberView, error)
	GetBarber(ctx context.Context, id uuid.UUID) (*BarberView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListClients(ctx context.Context) ([]*ClientView, error)
	GetClient(ctx context.Context, id uuid.UUID) (*ClientView, error)
}

type catalogQueriesImpl struct {
	barbers  BarberReadStore
	services ServiceReadStore
	clients  ClientReadStore
}

func NewCatalogQueries(barbers BarberReadStore, services ServiceReadStore, clients ClientReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		barbers:  barbers,
		services: services,
		clients:  clients,
	}
}

func (q *catalogQueriesImpl) ListBarbers(ctx context.Context) ([]*BarberView, error) {
	return q.barbers.FindAll(ctx)
}

func (q *catalogQueriesImpl) GetBarber(ctx context.Context, id uuid.UUID) (*BarberView, error) {
	view, err := q.barbers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBarberNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.services.FindAll(ctx)
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.services.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListClients(ctx context.Context) ([]*ClientView, error) {
	return q.clients.FindAll(ctx)
}

func (q *catalogQueriesImpl) GetClient(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	view, err := q.clients.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClientNotFound)
		}
		return nil, err
	}
	return view, nil
}
