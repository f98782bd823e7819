package commands

import (
	"context"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.NotFound("booking not found")
	ErrPitchNotFound    = errs.NotFound("pitch not found")
	ErrClubNotFound     = errs.NotFound("club not found")
	ErrPlayerNotFound   = errs.NotFound("player not found")
	ErrRuleNotFound     = errs.NotFound("pricing rule not found")
	ErrProposalNotFound = errs.NotFound("no pending reschedule proposal for this booking")
)

// Settings are the business knobs shared by the write use cases.
type Settings struct {
	Location          *time.Location
	PlayerOpeningDays int
	Limits            team.Limits
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// notFoundAs replaces a repository NOT_FOUND with a domain error.
func notFoundAs(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}

// dayPercent resolves the multiplier of one date. ok is false on a closed day.
func dayPercent(ctx context.Context, tx shared.Tx, c *club.Club, date time.Time) (pricing.DaySchedule, bool, error) {
	rules, err := tx.PricingRules().ForDates(ctx, tx.DB(), c.ID(), []time.Time{date})
	if err != nil {
		return pricing.DaySchedule{}, false, err
	}
	day, ok := pricing.ResolveDay(pricing.HoursOf(c), rules, date)
	return day, ok, nil
}

// checkFree takes the pitch-day lock and rejects slot if it overlaps any
// booking in statuses other than exclude.
func checkFree(ctx context.Context, tx shared.Tx, pitchID uuid.UUID, slot booking.Slot, statuses []booking.Status, exclude uuid.UUID) error {
	if err := tx.Bookings().LockPitchDay(ctx, tx.DB(), pitchID, slot.Date()); err != nil {
		return err
	}
	taken, err := tx.Bookings().SlotsInStatus(ctx, tx.DB(), pitchID, slot.Date(), statuses, exclude)
	if err != nil {
		return err
	}
	return booking.CheckOverlap(slot, taken)
}

type BookingResult struct {
	ID            uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	Slot          booking.Slot
}

func resultOf(b *booking.Booking) *BookingResult {
	return &BookingResult{
		ID:            b.ID(),
		Status:        b.Status(),
		PaymentStatus: b.PaymentStatus(),
		Slot:          b.Slot(),
	}
}
