package readstore

import (
	"context"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) queries.NotificationReadStore {
	return &notificationReadStore{pool: pool}
}

const notificationColumns = `id, type, title, message, COALESCE(icon, ''), action_url, read, created_at`

func (s *notificationReadStore) FindAll(ctx context.Context) ([]*queries.NotificationView, error) {
	const q = `SELECT ` + notificationColumns + ` FROM notifications ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (s *notificationReadStore) FindUnread(ctx context.Context) ([]*queries.NotificationView, error) {
	const q = `SELECT ` + notificationColumns + ` FROM notifications WHERE NOT read ORDER BY created_at DESC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unread notifications", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (s *notificationReadStore) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE NOT read`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}

func collectNotifications(rows pgx.Rows) ([]*queries.NotificationView, error) {
	views := []*queries.NotificationView{}
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Type, &v.Title, &v.Message, &v.Icon, &v.ActionURL, &v.Read, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return views, nil
}
