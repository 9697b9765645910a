package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/client"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/notification"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientParams struct {
	Name  string
	Phone string
	Email string
}

type ClientCommands interface {
	Create(ctx context.Context, params ClientParams) (*queries.ClientView, error)
	Update(ctx context.Context, id uuid.UUID, params ClientParams) (*queries.ClientView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientCommandsImpl struct {
	repo          ClientRepository
	notifications NotificationRepository
	reader        queries.ClientReadStore
}

func NewClientCommands(repo ClientRepository, notifications NotificationRepository, reader queries.ClientReadStore) ClientCommands {
	return &clientCommandsImpl{repo: repo, notifications: notifications, reader: reader}
}

func (c *clientCommandsImpl) Create(ctx context.Context, params ClientParams) (*queries.ClientView, error) {
	cl, err := client.NewClient(params.Name, params.Phone, params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Create(ctx, cl); err != nil {
		return nil, err
	}

	c.notify(ctx, "New client", fmt.Sprintf("%s joined the client list", cl.Name()))

	return c.reader.FindByID(ctx, cl.ID())
}

func (c *clientCommandsImpl) Update(ctx context.Context, id uuid.UUID, params ClientParams) (*queries.ClientView, error) {
	cl, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrClientNotFound)
	}
	if err := cl.UpdateContact(params.Name, params.Phone, params.Email); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.Update(ctx, cl); err != nil {
		return nil, err
	}
	return c.reader.FindByID(ctx, id)
}

func (c *clientCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := c.repo.FindByID(ctx, id); err != nil {
		return markNotFound(err, errs.ErrClientNotFound)
	}
	return c.repo.Delete(ctx, id)
}

func (c *clientCommandsImpl) notify(ctx context.Context, title, message string) {
	n, err := notification.NewNotification(notification.TypeClient, title, message, "person_add", "")
	if err != nil {
		slog.Warn("skipping malformed notification", "title", title, "error", err)
		return
	}
	if err := c.notifications.Create(ctx, n); err != nil {
		slog.Warn("failed to store notification", "title", title, "error", err)
	}
}
