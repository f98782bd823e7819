package request

import (
	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOwnerBookingRequest struct {
	PitchID       uuid.UUID `json:"pitch_id" binding:"required"`
	Username      *string   `json:"username" binding:"omitempty,min=1,max=150"`
	Date          string    `json:"date" binding:"required,date"`
	StartTime     string    `json:"start_time" binding:"required,timeofday"`
	EndTime       string    `json:"end_time" binding:"required,timeofday"`
	Price         *string   `json:"price" binding:"omitempty,decimal"`
	Deposit       *string   `json:"deposit" binding:"omitempty,decimal"`
	Status        int16     `json:"status" binding:"required,oneof=3 4"`
	PaymentStatus int16     `json:"payment_status" binding:"required,oneof=1 2 3"`
	Phone         *string   `json:"phone" binding:"omitempty,max=20"`
	Notes         string    `json:"notes" binding:"max=1000"`
}

func (r CreateOwnerBookingRequest) ToCommand() (commands.CreateOwnerBookingRequest, error) {
	slot, err := parseSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateOwnerBookingRequest{}, err
	}
	var price, deposit *decimal.Decimal
	if price, err = parseDecimalPtr(r.Price); err != nil {
		return commands.CreateOwnerBookingRequest{}, err
	}
	if deposit, err = parseDecimalPtr(r.Deposit); err != nil {
		return commands.CreateOwnerBookingRequest{}, err
	}
	return commands.CreateOwnerBookingRequest{
		PitchID:        r.PitchID,
		PlayerUsername: r.Username,
		Date:           slot.date,
		StartTime:      slot.start,
		EndTime:        slot.end,
		Price:          price,
		Deposit:        deposit,
		Status:         booking.Status(r.Status),
		PaymentStatus:  booking.PaymentStatus(r.PaymentStatus),
		Phone:          r.Phone,
		Notes:          r.Notes,
	}, nil
}

type CreatePlayerBookingRequest struct {
	PitchID   uuid.UUID `json:"pitch_id" binding:"required"`
	Date      string    `json:"date" binding:"required,date"`
	StartTime string    `json:"start_time" binding:"required,timeofday"`
	EndTime   string    `json:"end_time" binding:"required,timeofday"`
	Phone     *string   `json:"phone" binding:"omitempty,max=20"`
	Notes     string    `json:"notes" binding:"max=1000"`
}

func (r CreatePlayerBookingRequest) ToCommand() (commands.CreatePlayerBookingRequest, error) {
	slot, err := parseSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreatePlayerBookingRequest{}, err
	}
	return commands.CreatePlayerBookingRequest{
		PitchID:   r.PitchID,
		Date:      slot.date,
		StartTime: slot.start,
		EndTime:   slot.end,
		Phone:     r.Phone,
		Notes:     r.Notes,
	}, nil
}

type RescheduleRequest struct {
	Date      string `json:"date" binding:"required,date"`
	StartTime string `json:"start_time" binding:"required,timeofday"`
	EndTime   string `json:"end_time" binding:"required,timeofday"`
}

func (r RescheduleRequest) ToCommand() (commands.RescheduleRequest, error) {
	slot, err := parseSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return commands.RescheduleRequest{}, err
	}
	return commands.RescheduleRequest{Date: slot.date, StartTime: slot.start, EndTime: slot.end}, nil
}

// OwnerBookingQuery is bound from the query string of the dashboard listing.
type OwnerBookingQuery struct {
	PitchID  *string `form:"pitch" binding:"omitempty,uuid"`
	Date     *string `form:"date" binding:"omitempty,date"`
	TimeFrom *string `form:"time_from" binding:"omitempty,timeofday"`
	TimeTo   *string `form:"time_to" binding:"omitempty,timeofday"`
}

func (q OwnerBookingQuery) ToFilter() (queries.OwnerBookingFilter, error) {
	var f queries.OwnerBookingFilter
	var err error
	if q.PitchID != nil {
		id, err := uuid.Parse(*q.PitchID)
		if err != nil {
			return f, err
		}
		f.PitchID = &id
	}
	if f.Date, err = parseDatePtr(q.Date); err != nil {
		return f, err
	}
	if f.TimeFrom, err = parseTimeOfDayPtr(q.TimeFrom); err != nil {
		return f, err
	}
	if f.TimeTo, err = parseTimeOfDayPtr(q.TimeTo); err != nil {
		return f, err
	}
	return f, nil
}

// PageQuery carries keyset pagination parameters.
type PageQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

func (q PageQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func (q PageQuery) PageLimit() int {
	return queries.ValidateLimit(q.Limit)
}
