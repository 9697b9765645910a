package commands

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type notificationCommandsImpl struct {
	repo NotificationRepository
}

func NewNotificationCommands(repo NotificationRepository) NotificationCommands {
	return &notificationCommandsImpl{repo: repo}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	found, err := c.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.ErrNotificationNotFound
	}
	return nil
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context) (int64, error) {
	return c.repo.MarkAllRead(ctx)
}
