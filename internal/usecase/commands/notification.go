package commands

import (
	"context"

	"pitch-booking/internal/domain/notification"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type notificationUseCase struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCase{uow: uow}
}

func (uc *notificationUseCase) MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, notification.ErrNotFound)
		}
		if err := n.MarkRead(actor.UserID); err != nil {
			return err
		}
		return tx.Notifications().MarkRead(ctx, tx.DB(), n.ID())
	})
}
