package commands

import (
	"context"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/event"
	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/events"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOwnerBookingRequest struct {
	PitchID        uuid.UUID
	PlayerUsername *string
	Date           time.Time
	StartTime      daytime.TimeOfDay
	EndTime        daytime.TimeOfDay
	Price          *decimal.Decimal
	Deposit        *decimal.Decimal
	Status         booking.Status
	PaymentStatus  booking.PaymentStatus
	Phone          *string
	Notes          string
}

type RescheduleRequest struct {
	Date      time.Time
	StartTime daytime.TimeOfDay
	EndTime   daytime.TimeOfDay
}

type OwnerBookingCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateOwnerBookingRequest) (*BookingResult, error)
	ApplyAction(ctx context.Context, actor user.Actor, bookingID uuid.UUID, action booking.Action) (*BookingResult, error)
	ProposeReschedule(ctx context.Context, actor user.Actor, bookingID uuid.UUID, req RescheduleRequest) (*BookingResult, error)
}

type ownerBookingUseCase struct {
	runner   *events.Runner
	clock    clock.Clock
	settings Settings
}

func NewOwnerBookingUseCase(runner *events.Runner, clk clock.Clock, settings Settings) OwnerBookingCommands {
	return &ownerBookingUseCase{runner: runner, clock: clk, settings: settings}
}

func (uc *ownerBookingUseCase) Create(ctx context.Context, actor user.Actor, req CreateOwnerBookingRequest) (*BookingResult, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.runner.Within(ctx, func(ctx context.Context, tx shared.Tx, emit events.Emit) error {
		p, err := tx.Pitches().FindByID(ctx, tx.DB(), req.PitchID)
		if err != nil {
			return notFoundAs(err, ErrPitchNotFound)
		}
		if p.ClubID() != clubID {
			return ErrPitchNotFound
		}

		var playerID *uuid.UUID
		if req.PlayerUsername != nil && *req.PlayerUsername != "" {
			u, err := tx.Users().FindByUsername(ctx, tx.DB(), *req.PlayerUsername)
			if err != nil {
				return notFoundAs(err, ErrPlayerNotFound)
			}
			playerID = &u.ID
		}

		price := req.Price
		if price == nil {
			c, err := tx.Clubs().FindByID(ctx, tx.DB(), clubID)
			if err != nil {
				return notFoundAs(err, ErrClubNotFound)
			}
			day, ok, err := dayPercent(ctx, tx, c, slot.Date())
			if err != nil {
				return err
			}
			percent := pricing.DefaultPercent
			if ok {
				percent = day.Percent
			}
			computed := p.Price(percent, slot.Start(), slot.End())
			price = &computed
		}

		if err := checkFree(ctx, tx, p.ID(), slot, booking.ActiveStatuses(), uuid.Nil); err != nil {
			return err
		}

		now := uc.clock.Now()
		b, err := booking.NewOwnerBooking(booking.OwnerBookingParams{
			PitchID:       p.ID(),
			ClubID:        clubID,
			PlayerID:      playerID,
			Slot:          slot,
			Price:         *price,
			Deposit:       req.Deposit,
			Status:        req.Status,
			PaymentStatus: req.PaymentStatus,
			Phone:         req.Phone,
			Notes:         req.Notes,
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

func (uc *ownerBookingUseCase) ApplyAction(ctx context.Context, actor user.Actor, bookingID uuid.UUID, action booking.Action) (*BookingResult, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err = uc.runner.Within(ctx, func(ctx context.Context, tx shared.Tx, emit events.Emit) error {
		b, err := uc.lockOwned(ctx, tx, clubID, bookingID)
		if err != nil {
			return err
		}
		from := b.Status()

		now := uc.clock.Now()
		if err := b.ApplyOwnerAction(action, now, uc.settings.location()); err != nil {
			return err
		}
		if action == booking.ActionComplete {
			completed := []booking.Status{booking.StatusCompleted}
			if err := checkFree(ctx, tx, b.PitchID(), b.Slot(), completed, b.ID()); err != nil {
				return err
			}
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

func (uc *ownerBookingUseCase) ProposeReschedule(ctx context.Context, actor user.Actor, bookingID uuid.UUID, req RescheduleRequest) (*BookingResult, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	newSlot, err := booking.NewSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err = uc.runner.Within(ctx, func(ctx context.Context, tx shared.Tx, emit events.Emit) error {
		b, err := uc.lockOwned(ctx, tx, clubID, bookingID)
		if err != nil {
			return err
		}
		from := b.Status()

		if err := checkFree(ctx, tx, b.PitchID(), newSlot, booking.ActiveStatuses(), b.ID()); err != nil {
			return err
		}

		now := uc.clock.Now()
		proposal, err := b.ProposeReschedule(newSlot, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
			return err
		}
		if err := tx.Proposals().Create(ctx, tx.DB(), proposal); err != nil {
			return err
		}
		updated = b
		return emit(ctx,
			event.BookingStatusChanged{Booking: b, From: from, At: now},
			event.RescheduleProposed{Proposal: proposal, At: now},
		)
	})
	if err != nil {
		return nil, err
	}
	return resultOf(updated), nil
}

// lockOwned reads the booking FOR UPDATE. Bookings of other clubs are
// reported as missing.
func (uc *ownerBookingUseCase) lockOwned(ctx context.Context, tx shared.Tx, clubID, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	if b.ClubID() != clubID {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
