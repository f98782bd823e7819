package queries

import (
	"context"
	"time"

	"pitch-booking/internal/domain/user"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListForUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*NotificationView, error)
}

type NotificationQueries interface {
	List(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
}

type notificationQueries struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueries{store: store}
}

func (q *notificationQueries) List(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListForUser(ctx, actor.UserID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(n *NotificationView) (time.Time, uuid.UUID) { return n.CreatedAt, n.ID })
	return rows, next, nil
}
