package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/notification"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/service"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceParams struct {
	Name           string
	DurationMin    int
	BufferAfterMin int
	PriceCents     int64
}

type ServiceCommands interface {
	Create(ctx context.Context, params ServiceParams) (*queries.ServiceView, error)
	Update(ctx context.Context, id uuid.UUID, params ServiceParams) (*queries.ServiceView, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*queries.ServiceView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceCommandsImpl struct {
	repo          ServiceRepository
	notifications NotificationRepository
	reader        queries.ServiceReadStore
}

func NewServiceCommands(repo ServiceRepository, notifications NotificationRepository, reader queries.ServiceReadStore) ServiceCommands {
	return &serviceCommandsImpl{repo: repo, notifications: notifications, reader: reader}
}

func (c *serviceCommandsImpl) Create(ctx context.Context, params ServiceParams) (*queries.ServiceView, error) {
	s, err := service.NewService(params.Name, params.DurationMin, params.BufferAfterMin, params.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	c.notify(ctx, "New service", fmt.Sprintf("Service %q added (%d min)", s.Name(), s.DurationMin()))

	return c.reader.FindByID(ctx, s.ID())
}

func (c *serviceCommandsImpl) Update(ctx context.Context, id uuid.UUID, params ServiceParams) (*queries.ServiceView, error) {
	s, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrServiceNotFound)
	}
	if err := s.Update(params.Name, params.DurationMin, params.BufferAfterMin, params.PriceCents); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	c.notify(ctx, "Service updated", fmt.Sprintf("Service %q was modified", s.Name()))

	return c.reader.FindByID(ctx, id)
}

func (c *serviceCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) (*queries.ServiceView, error) {
	s, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrServiceNotFound)
	}
	if active {
		s.Activate()
	} else {
		s.Deactivate()
	}
	if err := c.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, id)
}

func (c *serviceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := c.repo.FindByID(ctx, id); err != nil {
		return markNotFound(err, errs.ErrServiceNotFound)
	}
	return c.repo.Delete(ctx, id)
}

func (c *serviceCommandsImpl) notify(ctx context.Context, title, message string) {
	n, err := notification.NewNotification(notification.TypeService, title, message, "content_cut", "")
	if err != nil {
		slog.Warn("skipping malformed notification", "title", title, "error", err)
		return
	}
	if err := c.notifications.Create(ctx, n); err != nil {
		slog.Warn("failed to store notification", "title", title, "error", err)
	}
}
