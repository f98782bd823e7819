package repository

import (
	"context"

	"pitch-booking/internal/domain/notification"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertNotificationSQL = `INSERT INTO notifications
(id, user_id, sender_id, title, message, type, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectNotificationForUpdateSQL = `SELECT id, user_id, sender_id, title, message, type, is_read, created_at
FROM notifications WHERE id = $1 FOR UPDATE`

	markNotificationReadSQL = `UPDATE notifications SET is_read = TRUE WHERE id = $1`
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	_, err := tx.Exec(ctx, insertNotificationSQL,
		n.ID(), n.UserID(), pgconv.UUIDPtrToPgtype(n.SenderID()),
		n.Title(), n.Message(), n.Kind(), n.IsRead(), n.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*notification.Notification, error) {
	var (
		nID, userID          uuid.UUID
		senderID             pgtype.UUID
		title, message, kind string
		isRead               bool
		createdAt            pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, selectNotificationForUpdateSQL, id).Scan(
		&nID, &userID, &senderID, &title, &message, &kind, &isRead, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock notification", err)
	}
	return notification.Reconstruct(nID, userID, pgconv.UUIDPtrFromPgtype(senderID),
		title, message, kind, isRead, pgconv.TimeFromPgtype(createdAt)), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, markNotificationReadSQL, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	return nil
}
