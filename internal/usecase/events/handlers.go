package events

import (
	"context"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/event"
	"pitch-booking/internal/domain/notification"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/usecase/shared"
)

var ErrClubNotFound = errs.Validation("club not found")

func recordStatusHistory(ctx context.Context, tx shared.Tx, e event.Event) error {
	var b *booking.Booking
	switch ev := e.(type) {
	case event.BookingCreated:
		b = ev.Booking
	case event.BookingStatusChanged:
		b = ev.Booking
	default:
		return errs.Newf("unexpected event %s", e.Name())
	}
	return tx.StatusHistory().Append(ctx, tx.DB(), booking.NewStatusHistory(b, e.OccurredAt()))
}

func notifyReschedule(ctx context.Context, tx shared.Tx, e event.Event) error {
	ev, ok := e.(event.RescheduleProposed)
	if !ok {
		return errs.Newf("unexpected event %s", e.Name())
	}
	c, err := tx.Clubs().FindByID(ctx, tx.DB(), ev.Proposal.ClubID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClubNotFound
		}
		return err
	}
	n := notification.ForReschedule(ev.Proposal, c.Name(), c.ManagerID(), ev.At)
	return tx.Notifications().Create(ctx, tx.DB(), n)
}

func updateClubRating(ctx context.Context, tx shared.Tx, e event.Event) error {
	ev, ok := e.(event.ReviewCreated)
	if !ok {
		return errs.Newf("unexpected event %s", e.Name())
	}
	c, err := tx.Clubs().FindForUpdate(ctx, tx.DB(), ev.Review.ClubID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClubNotFound
		}
		return err
	}
	if err := c.ApplyRating(ev.Review.Rating().Value(), ev.At); err != nil {
		return err
	}
	return tx.Clubs().UpdateRating(ctx, tx.DB(), c)
}
