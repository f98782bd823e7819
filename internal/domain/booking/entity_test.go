//go:build unit

package booking_test

import (
	"testing"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func slot(t *testing.T, date, start, end string) booking.Slot {
	t.Helper()
	s, err := booking.NewSlot(daytime.MustParseDate(date), daytime.MustParse(start), daytime.MustParse(end))
	require.NoError(t, err)
	return s
}

func inStatus(t *testing.T, status booking.Status, byOwner bool) *booking.Booking {
	t.Helper()
	player := uuid.New()
	return booking.Reconstruct(booking.ReconstructParams{
		ID:            uuid.New(),
		PitchID:       uuid.New(),
		ClubID:        uuid.New(),
		PlayerID:      &player,
		Slot:          slot(t, "2025-03-01", "10:00", "11:00"),
		Price:         decimal.NewFromInt(100),
		Status:        status,
		PaymentStatus: booking.PaymentUnpaid,
		ByOwner:       byOwner,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

func TestStatus(t *testing.T) {
	t.Run("success: every status has a label", func(t *testing.T) {
		for _, s := range booking.AllStatuses() {
			assert.NotEqual(t, "UNKNOWN", s.String(), "status %d", s)
			parsed, err := booking.ParseStatusLabel(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
		assert.Len(t, booking.AllStatuses(), 9)
	})

	t.Run("success: active set", func(t *testing.T) {
		for _, s := range booking.AllStatuses() {
			want := s == booking.StatusPendingPay || s == booking.StatusCompleted || s == booking.StatusPendingPlayer
			assert.Equal(t, want, s.IsActive(), s.String())
		}
	})

	t.Run("error: out of range", func(t *testing.T) {
		_, err := booking.ParseStatus(0)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
		_, err = booking.ParseStatus(10)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestOwnerActions(t *testing.T) {
	loc := time.UTC
	afterSlot := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	type key struct {
		from    booking.Status
		byOwner bool
	}
	allowed := map[booking.Action][]key{
		booking.ActionConfirmPayment: {{booking.StatusPendingManager, false}, {booking.StatusPendingManager, true}},
		booking.ActionReject:         {{booking.StatusPendingManager, false}, {booking.StatusPendingManager, true}},
		booking.ActionComplete:       {{booking.StatusPendingPay, true}},
		booking.ActionCancel:         {{booking.StatusCompleted, false}, {booking.StatusCompleted, true}, {booking.StatusPendingPay, true}},
		booking.ActionDispute:        {{booking.StatusCompleted, false}, {booking.StatusCompleted, true}, {booking.StatusPendingPay, true}},
		booking.ActionNoShow:         {{booking.StatusPendingPay, true}},
		booking.ActionExpire: {
			{booking.StatusPendingManager, false}, {booking.StatusPendingManager, true},
			{booking.StatusPendingPlayer, false}, {booking.StatusPendingPlayer, true},
			{booking.StatusPendingPay, false}, {booking.StatusPendingPay, true},
		},
	}

	for _, action := range booking.OwnerActions() {
		for _, from := range booking.AllStatuses() {
			for _, byOwner := range []bool{false, true} {
				ok := false
				for _, k := range allowed[action] {
					if k.from == from && k.byOwner == byOwner {
						ok = true
					}
				}
				b := inStatus(t, from, byOwner)
				err := b.ApplyOwnerAction(action, afterSlot, loc)
				if ok {
					require.NoError(t, err, "%s from %s (by_owner=%v)", action, from, byOwner)
					assert.Equal(t, action.Target(), b.Status())
					assert.Equal(t, afterSlot, b.UpdatedAt())
				} else {
					require.ErrorIs(t, err, booking.ErrInvalidTransition, "%s from %s (by_owner=%v)", action, from, byOwner)
					assert.True(t, errs.IsValidation(err))
					assert.Equal(t, from, b.Status())
				}
			}
		}
	}
}

func TestTransitions(t *testing.T) {
	t.Run("error: owner reject does not apply once a reschedule is proposed", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingPlayer, false)
		require.ErrorIs(t, b.RejectByOwner(now), booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusPendingPlayer, b.Status())

		require.NoError(t, b.Reject(now))
		assert.Equal(t, booking.StatusReject, b.Status())
	})

	t.Run("error: completed cannot go back to pending pay", func(t *testing.T) {
		b := inStatus(t, booking.StatusCompleted, true)
		err := b.ConfirmPayment(now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("error: expire before the slot ends", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingManager, false)
		err := b.Expire(time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC), time.UTC)
		require.ErrorIs(t, err, booking.ErrNotEnded)
	})

	t.Run("success: player cancels own pending pay booking", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingPay, false)
		require.NoError(t, b.CancelByPlayer(*b.PlayerID(), now))
		assert.Equal(t, booking.StatusCanceled, b.Status())
	})

	t.Run("error: player cancels someone else's booking", func(t *testing.T) {
		b := inStatus(t, booking.StatusCompleted, false)
		err := b.CancelByPlayer(uuid.New(), now)
		require.ErrorIs(t, err, booking.ErrNotBookingPlayer)
		assert.True(t, errs.IsPermission(err))
	})

	t.Run("success: general reject from pending player", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingPlayer, false)
		require.NoError(t, b.Reject(now))
		assert.Equal(t, booking.StatusReject, b.Status())
	})
}

func TestReschedule(t *testing.T) {
	t.Run("success: propose keeps the booking slot", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingManager, false)
		old := b.Slot()
		next := slot(t, "2025-03-02", "18:00", "19:00")

		p, err := b.ProposeReschedule(next, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPendingPlayer, b.Status())
		assert.True(t, b.Slot().Equal(old))
		assert.True(t, p.OldSlot().Equal(old))
		assert.True(t, p.NewSlot().Equal(next))
		assert.Equal(t, booking.ProposalPending, p.Status())
		assert.Equal(t, *b.PlayerID(), p.PlayerID())
	})

	t.Run("error: no player assigned", func(t *testing.T) {
		b := booking.Reconstruct(booking.ReconstructParams{
			ID:     uuid.New(),
			Slot:   slot(t, "2025-03-01", "10:00", "11:00"),
			Status: booking.StatusPendingManager,
		})
		_, err := b.ProposeReschedule(slot(t, "2025-03-01", "12:00", "13:00"), now)
		require.ErrorIs(t, err, booking.ErrNoPlayer)
		assert.Equal(t, booking.StatusPendingManager, b.Status())
	})

	t.Run("error: same slot", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingManager, false)
		_, err := b.ProposeReschedule(b.Slot(), now)
		require.ErrorIs(t, err, booking.ErrSameSlot)
	})

	t.Run("success: accept applies the proposed slot", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingManager, false)
		next := slot(t, "2025-03-02", "18:00", "19:00")
		p, err := b.ProposeReschedule(next, now)
		require.NoError(t, err)

		require.NoError(t, b.AcceptReschedule(p, now))
		assert.Equal(t, booking.StatusPendingPay, b.Status())
		assert.True(t, b.Slot().Equal(next))
		assert.Equal(t, booking.ProposalAccepted, p.Status())

		err = b.AcceptReschedule(p, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("success: decline rejects booking and proposal", func(t *testing.T) {
		b := inStatus(t, booking.StatusPendingManager, false)
		p, err := b.ProposeReschedule(slot(t, "2025-03-02", "18:00", "19:00"), now)
		require.NoError(t, err)

		require.NoError(t, b.DeclineReschedule(p, now))
		assert.Equal(t, booking.StatusReject, b.Status())
		assert.Equal(t, booking.ProposalRejected, p.Status())
	})
}

func TestSlot(t *testing.T) {
	t.Run("error: end not after start", func(t *testing.T) {
		_, err := booking.NewSlot(daytime.MustParseDate("2025-03-01"), daytime.MustParse("11:00"), daytime.MustParse("11:00"))
		require.ErrorIs(t, err, booking.ErrInvalidSlot)
		_, err = booking.NewSlot(daytime.MustParseDate("2025-03-01"), daytime.MustParse("12:00"), daytime.MustParse("11:00"))
		require.ErrorIs(t, err, booking.ErrInvalidSlot)
	})

	t.Run("success: touching slots do not overlap", func(t *testing.T) {
		taken := []booking.Slot{slot(t, "2025-03-01", "10:00", "11:00")}
		require.NoError(t, booking.CheckOverlap(slot(t, "2025-03-01", "11:00", "12:00"), taken))
		require.NoError(t, booking.CheckOverlap(slot(t, "2025-03-01", "09:00", "10:00"), taken))
	})

	t.Run("error: overlapping slots", func(t *testing.T) {
		taken := []booking.Slot{slot(t, "2025-03-01", "10:00", "11:00")}
		err := booking.CheckOverlap(slot(t, "2025-03-01", "10:30", "11:30"), taken)
		require.ErrorIs(t, err, booking.ErrOverlap)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("success: other date never overlaps", func(t *testing.T) {
		taken := []booking.Slot{slot(t, "2025-03-01", "10:00", "11:00")}
		require.NoError(t, booking.CheckOverlap(slot(t, "2025-03-02", "10:30", "11:30"), taken))
	})
}

func TestOwnerBooking(t *testing.T) {
	base := func(t *testing.T) booking.OwnerBookingParams {
		return booking.OwnerBookingParams{
			PitchID:       uuid.New(),
			ClubID:        uuid.New(),
			Slot:          slot(t, "2025-03-01", "10:00", "11:00"),
			Price:         decimal.NewFromInt(100),
			Status:        booking.StatusCompleted,
			PaymentStatus: booking.PaymentPaid,
		}
	}
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name   string
		mutate func(*booking.OwnerBookingParams)
		errIs  error
	}{
		{name: "success: completed and paid", mutate: func(*booking.OwnerBookingParams) {}},
		{name: "success: pending pay", mutate: func(p *booking.OwnerBookingParams) { p.Status = booking.StatusPendingPay }},
		{
			name:   "error: player-only initial status",
			mutate: func(p *booking.OwnerBookingParams) { p.Status = booking.StatusPendingManager },
			errIs:  booking.ErrOwnerStatus,
		},
		{
			name:   "error: deposit missing",
			mutate: func(p *booking.OwnerBookingParams) { p.PaymentStatus = booking.PaymentDeposit },
			errIs:  booking.ErrDepositRequired,
		},
		{
			name: "error: deposit zero",
			mutate: func(p *booking.OwnerBookingParams) {
				p.PaymentStatus = booking.PaymentDeposit
				p.Deposit = dec("0")
			},
			errIs: booking.ErrDepositRequired,
		},
		{
			name: "error: deposit above price",
			mutate: func(p *booking.OwnerBookingParams) {
				p.PaymentStatus = booking.PaymentDeposit
				p.Deposit = dec("100.01")
			},
			errIs: booking.ErrDepositExceedsPrice,
		},
		{
			name: "success: deposit equal to price",
			mutate: func(p *booking.OwnerBookingParams) {
				p.PaymentStatus = booking.PaymentDeposit
				p.Deposit = dec("100")
			},
		},
		{
			name:   "error: negative price",
			mutate: func(p *booking.OwnerBookingParams) { p.Price = decimal.NewFromInt(-1) },
			errIs:  booking.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base(t)
			tt.mutate(&p)
			b, err := booking.NewOwnerBooking(p, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.True(t, b.ByOwner())
			assert.NotEqual(t, uuid.Nil, b.ID())
			assert.Equal(t, p.Status, b.Status())
		})
	}
}

func TestPlayerBooking(t *testing.T) {
	t.Run("success: starts pending manager and unpaid", func(t *testing.T) {
		phone := "  "
		b, err := booking.NewPlayerBooking(booking.PlayerBookingParams{
			PitchID:  uuid.New(),
			ClubID:   uuid.New(),
			PlayerID: uuid.New(),
			Slot:     slot(t, "2025-03-01", "17:00", "19:00"),
			Price:    decimal.RequireFromString("250.004"),
			Phone:    &phone,
			Notes:    " bring bibs ",
		}, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPendingManager, b.Status())
		assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
		assert.False(t, b.ByOwner())
		assert.Nil(t, b.Phone())
		assert.Equal(t, "bring bibs", b.Notes())
		assert.True(t, decimal.RequireFromString("250").Equal(b.Price()))

		h := booking.NewStatusHistory(b, now)
		assert.Equal(t, b.ID(), h.BookingID)
		assert.Equal(t, booking.StatusPendingManager, h.Status)
	})
}
