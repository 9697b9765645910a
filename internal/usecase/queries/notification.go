package queries

import "context"

type NotificationReadStore interface {
	FindAll(ctx context.Context) ([]*NotificationView, error)
	FindUnread(ctx context.Context) ([]*NotificationView, error)
	CountUnread(ctx context.Context) (int64, error)
}

// NotificationQueries serves the backoffice activity feed, newest first.
type NotificationQueries interface {
	List(ctx context.Context, unreadOnly bool) ([]*NotificationView, error)
	UnreadCount(ctx context.Context) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, unreadOnly bool) ([]*NotificationView, error) {
	if unreadOnly {
		return q.store.FindUnread(ctx)
	}
	return q.store.FindAll(ctx)
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context) (int64, error) {
	return q.store.CountUnread(ctx)
}
