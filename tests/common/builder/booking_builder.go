//go:build unit || e2e

package builder

import (
	"time"

	"pitch-booking/internal/domain/booking"
	reqdto "pitch-booking/internal/handler/dto/request"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	PitchID       uuid.UUID
	PitchName     string
	ClubID        uuid.UUID
	ClubName      string
	PlayerID      *uuid.UUID
	PlayerName    *string
	Date          time.Time
	StartTime     daytime.TimeOfDay
	EndTime       daytime.TimeOfDay
	Price         decimal.Decimal
	Deposit       *decimal.Decimal
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	ByOwner       bool
	Phone         *string
	Notes         string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	playerID := uuid.New()
	playerName := "player_one"
	return &BookingBuilder{
		ID:            uuid.New(),
		PitchID:       uuid.New(),
		PitchName:     "Pitch A",
		ClubID:        uuid.New(),
		ClubName:      "Riyadh Sports Club",
		PlayerID:      &playerID,
		PlayerName:    &playerName,
		Date:          daytime.MustParseDate("2026-05-12"),
		StartTime:     daytime.MustParse("18:00"),
		EndTime:       daytime.MustParse("19:30"),
		Price:         decimal.RequireFromString("150"),
		Status:        booking.StatusPendingManager,
		PaymentStatus: booking.PaymentUnpaid,
		CreatedAt:     time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsOwnerBooking() *BookingBuilder {
	b.ByOwner = true
	b.Status = booking.StatusPendingPay
	b.PaymentStatus = booking.PaymentDeposit
	deposit := decimal.RequireFromString("50")
	b.Deposit = &deposit
	return b
}

// Build methods
func (b *BookingBuilder) BuildOwnerCreateRequestDTO() reqdto.CreateOwnerBookingRequest {
	price := b.Price.String()
	req := reqdto.CreateOwnerBookingRequest{
		PitchID:       b.PitchID,
		Username:      b.PlayerName,
		Date:          daytime.FormatDate(b.Date),
		StartTime:     b.StartTime.HHMM(),
		EndTime:       b.EndTime.HHMM(),
		Price:         &price,
		Status:        int16(booking.StatusPendingPay),
		PaymentStatus: int16(booking.PaymentUnpaid),
		Phone:         b.Phone,
		Notes:         b.Notes,
	}
	if b.Deposit != nil {
		deposit := b.Deposit.String()
		req.Deposit = &deposit
		req.PaymentStatus = int16(booking.PaymentDeposit)
	}
	return req
}

func (b *BookingBuilder) BuildPlayerCreateRequestDTO() reqdto.CreatePlayerBookingRequest {
	return reqdto.CreatePlayerBookingRequest{
		PitchID:   b.PitchID,
		Date:      daytime.FormatDate(b.Date),
		StartTime: b.StartTime.HHMM(),
		EndTime:   b.EndTime.HHMM(),
		Phone:     b.Phone,
		Notes:     b.Notes,
	}
}

func (b *BookingBuilder) BuildRescheduleRequestDTO(date string, start, end string) reqdto.RescheduleRequest {
	return reqdto.RescheduleRequest{Date: date, StartTime: start, EndTime: end}
}

func (b *BookingBuilder) BuildSlot() booking.Slot {
	s, err := booking.NewSlot(b.Date, b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return s
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	return &commands.BookingResult{
		ID:            b.ID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Slot:          b.BuildSlot(),
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            b.ID,
		PitchID:       b.PitchID,
		PitchName:     b.PitchName,
		ClubID:        b.ClubID,
		ClubName:      b.ClubName,
		PlayerID:      b.PlayerID,
		PlayerName:    b.PlayerName,
		Phone:         b.Phone,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Price:         b.Price,
		Deposit:       b.Deposit,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		ByOwner:       b.ByOwner,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDetail() *queries.BookingDetail {
	return &queries.BookingDetail{
		BookingListItem: *b.BuildListItem(),
		Notes:           b.Notes,
		History: []queries.StatusHistoryView{{
			Status:    b.Status,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			ChangedAt: b.CreatedAt,
		}},
	}
}
