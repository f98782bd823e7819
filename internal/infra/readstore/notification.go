package readstore

import (
	"context"

	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	listNotificationsFirstPageSQL = `SELECT id, sender_id, title, message, type, is_read, created_at
FROM notifications WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

	listNotificationsKeysetSQL = `SELECT id, sender_id, title, message, type, is_read, created_at
FROM notifications WHERE user_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (r *NotificationReadStore) ListForUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.NotificationView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = r.db.Query(ctx, listNotificationsFirstPageSQL, userID, limit)
	} else {
		rows, err = r.db.Query(ctx, listNotificationsKeysetSQL, userID, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	out := []*queries.NotificationView{}
	for rows.Next() {
		var (
			n        queries.NotificationView
			senderID pgtype.UUID
		)
		if err := rows.Scan(&n.ID, &senderID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		n.SenderID = pgconv.UUIDPtrFromPgtype(senderID)
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return out, nil
}
