package commands

import (
	"context"

	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/usecase/shared"
)

type ClubCommands interface {
	Update(ctx context.Context, actor user.Actor, u club.Update) error
}

type clubUseCase struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClubUseCase(uow shared.UnitOfWork, clk clock.Clock) ClubCommands {
	return &clubUseCase{uow: uow, clock: clk}
}

func (uc *clubUseCase) Update(ctx context.Context, actor user.Actor, u club.Update) error {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Clubs().FindForUpdate(ctx, tx.DB(), clubID)
		if err != nil {
			return notFoundAs(err, ErrClubNotFound)
		}
		if c.ManagerID() != actor.UserID {
			return ErrClubNotFound
		}
		if err := c.Apply(u, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Clubs().Update(ctx, tx.DB(), c)
	})
}
