package commands

import (
	"context"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/event"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/usecase/events"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPastDate      = errs.Validation("bookings cannot be made for a past date")
	ErrOutsideWindow = errs.Validation("bookings are not open for this date yet")
	ErrClubClosed    = errs.Validation("the club is closed on this date")
	ErrOutsideHours  = errs.Validation("the requested time is outside the club's opening hours")
)

type CreatePlayerBookingRequest struct {
	PitchID   uuid.UUID
	Date      time.Time
	StartTime daytime.TimeOfDay
	EndTime   daytime.TimeOfDay
	Phone     *string
	Notes     string
}

type PlayerBookingCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreatePlayerBookingRequest) (*BookingResult, error)
	Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*BookingResult, error)
	AcceptReschedule(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*BookingResult, error)
	DeclineReschedule(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*BookingResult, error)
}

type playerBookingUseCase struct {
	runner   *events.Runner
	clock    clock.Clock
	settings Settings
}

func NewPlayerBookingUseCase(runner *events.Runner, clk clock.Clock, settings Settings) PlayerBookingCommands {
	return &playerBookingUseCase{runner: runner, clock: clk, settings: settings}
}

func (uc *playerBookingUseCase) Create(ctx context.Context, actor user.Actor, req CreatePlayerBookingRequest) (*BookingResult, error) {
	slot, err := booking.NewSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	today := daytime.Today(uc.clock, uc.settings.location())
	if slot.Date().Before(today) {
		return nil, ErrPastDate
	}
	if uc.settings.PlayerOpeningDays > 0 && !slot.Date().Before(today.AddDate(0, 0, uc.settings.PlayerOpeningDays)) {
		return nil, ErrOutsideWindow
	}

	var created *booking.Booking
	err = uc.runner.Within(ctx, func(ctx context.Context, tx shared.Tx, emit events.Emit) error {
		p, err := tx.Pitches().FindByID(ctx, tx.DB(), req.PitchID)
		if err != nil {
			return notFoundAs(err, ErrPitchNotFound)
		}
		if !p.IsActive() {
			return ErrPitchNotFound
		}
		c, err := tx.Clubs().FindByID(ctx, tx.DB(), p.ClubID())
		if err != nil {
			return notFoundAs(err, ErrClubNotFound)
		}
		if !c.IsActive() {
			return ErrClubNotFound
		}

		day, open, err := dayPercent(ctx, tx, c, slot.Date())
		if err != nil {
			return err
		}
		if !open {
			return ErrClubClosed
		}
		if !day.Contains(slot.Start(), slot.End()) {
			return ErrOutsideHours
		}

		if err := checkFree(ctx, tx, p.ID(), slot, booking.ActiveStatuses(), uuid.Nil); err != nil {
			return err
		}

		now := uc.clock.Now()
		b, err := booking.NewPlayerBooking(booking.PlayerBookingParams{
			PitchID:  p.ID(),
			ClubID:   c.ID(),
			PlayerID: actor.UserID,
			Slot:     slot,
			Price:    p.Price(day.Percent, slot.Start(), slot.End()),
			Phone:    req.Phone,
			Notes:    req.Notes,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return emit(ctx, event.BookingCreated{Booking: b, At: now})
	})
	if err != nil {
		return nil, err
	}
	return resultOf(created), nil
}

func (uc *playerBookingUseCase) Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*BookingResult, error) {
	return uc.transition(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		return b.CancelByPlayer(actor.UserID, now)
	})
}

func (uc *playerBookingUseCase) AcceptReschedule(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*BookingResult, error) {
	return uc.transition(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !b.IsPlayer(actor.UserID) {
			return booking.ErrNotBookingPlayer
		}
		p, err := tx.Proposals().FindPendingForUpdate(ctx, tx.DB(), b.ID())
		if err != nil {
			return notFoundAs(err, ErrProposalNotFound)
		}
		if err := checkFree(ctx, tx, b.PitchID(), p.NewSlot(), booking.ActiveStatuses(), b.ID()); err != nil {
			return err
		}
		if err := b.AcceptReschedule(p, now); err != nil {
			return err
		}
		return tx.Proposals().UpdateStatus(ctx, tx.DB(), p)
	})
}

func (uc *playerBookingUseCase) DeclineReschedule(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*BookingResult, error) {
	return uc.transition(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !b.IsPlayer(actor.UserID) {
			return booking.ErrNotBookingPlayer
		}
		p, err := tx.Proposals().FindPendingForUpdate(ctx, tx.DB(), b.ID())
		if err != nil {
			return notFoundAs(err, ErrProposalNotFound)
		}
		if err := b.DeclineReschedule(p, now); err != nil {
			return err
		}
		return tx.Proposals().UpdateStatus(ctx, tx.DB(), p)
	})
}

// transition locks the booking, applies fn and persists the new state.
func (uc *playerBookingUseCase) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error,
) (*BookingResult, error) {
	var updated *booking.Booking
	err := uc.runner.Within(ctx, func(ctx context.Context, tx shared.Tx, emit events.Emit) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		from := b.Status()
		now := uc.clock.Now()
		if err := fn(ctx, tx, b, now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
			return err
		}
		updated = b
		return emit(ctx, event.BookingStatusChanged{Booking: b, From: from, At: now})
	})
	if err != nil {
		return nil, err
	}
	return resultOf(updated), nil
}
