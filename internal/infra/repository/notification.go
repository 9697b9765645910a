package repository

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/notification"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) commands.NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	const q = `
		INSERT INTO notifications (id, type, title, message, icon, action_url, read)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
	`
	_, err := r.pool.Exec(ctx, q, n.ID(), string(n.Kind()), n.Title(), n.Message(), n.Icon(), n.ActionURL(), n.IsRead())
	if err != nil {
		return infra.WrapRepoErr("failed to insert notification", err)
	}
	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET read = true WHERE read = false`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
