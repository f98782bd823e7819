package response

import (
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	PitchID       uuid.UUID             `json:"pitch_id"`
	PitchName     string                `json:"pitch_name"`
	ClubID        uuid.UUID             `json:"club_id"`
	ClubName      string                `json:"club_name"`
	PlayerID      *uuid.UUID            `json:"player_id,omitempty"`
	PlayerName    *string               `json:"player_name,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	Date          string                `json:"date"`
	StartTime     daytime.TimeOfDay     `json:"start_time"`
	EndTime       daytime.TimeOfDay     `json:"end_time"`
	Price         string                `json:"price"`
	Deposit       *string               `json:"deposit,omitempty" copier:"-"`
	Status        booking.Status        `json:"status"`
	StatusLabel   string                `json:"status_label"`
	PaymentStatus booking.PaymentStatus `json:"payment_status"`
	PaymentLabel  string                `json:"payment_status_label"`
	ByOwner       bool                  `json:"by_owner"`
	CreatedAt     time.Time             `json:"created_at"`
}

func FromBookingListItem(v *queries.BookingListItem) BookingResponse {
	var r BookingResponse
	copyInto(&r, v)
	r.Deposit = money(v.Deposit)
	r.StatusLabel = v.Status.String()
	r.PaymentLabel = v.PaymentStatus.String()
	return r
}

func FromBookingList(items []*queries.BookingListItem) []BookingResponse {
	return mapAll(items, FromBookingListItem)
}

type StatusHistoryResponse struct {
	Status      booking.Status    `json:"status"`
	StatusLabel string            `json:"status_label"`
	Date        string            `json:"date"`
	StartTime   daytime.TimeOfDay `json:"start_time"`
	EndTime     daytime.TimeOfDay `json:"end_time"`
	ChangedAt   time.Time         `json:"changed_at"`
}

type ProposalResponse struct {
	ID           uuid.UUID         `json:"id"`
	NewDate      string            `json:"new_date"`
	NewStartTime daytime.TimeOfDay `json:"new_start_time"`
	NewEndTime   daytime.TimeOfDay `json:"new_end_time"`
	CreatedAt    time.Time         `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Notes    string                  `json:"notes"`
	History  []StatusHistoryResponse `json:"history"`
	Proposal *ProposalResponse       `json:"proposal,omitempty"`
}

func FromBookingDetail(v *queries.BookingDetail) BookingDetailResponse {
	r := BookingDetailResponse{
		BookingResponse: FromBookingListItem(&v.BookingListItem),
		Notes:           v.Notes,
		History: mapAll(v.History, func(h queries.StatusHistoryView) StatusHistoryResponse {
			var out StatusHistoryResponse
			copyInto(&out, &h)
			out.StatusLabel = h.Status.String()
			return out
		}),
	}
	if v.Proposal != nil {
		r.Proposal = &ProposalResponse{}
		copyInto(r.Proposal, v.Proposal)
	}
	return r
}

// BookingStateResponse is returned by every booking command.
type BookingStateResponse struct {
	ID            uuid.UUID             `json:"id"`
	Status        booking.Status        `json:"status"`
	StatusLabel   string                `json:"status_label"`
	PaymentStatus booking.PaymentStatus `json:"payment_status"`
	Date          string                `json:"date"`
	StartTime     daytime.TimeOfDay     `json:"start_time"`
	EndTime       daytime.TimeOfDay     `json:"end_time"`
}

func FromBookingResult(res *commands.BookingResult) BookingStateResponse {
	return BookingStateResponse{
		ID:            res.ID,
		Status:        res.Status,
		StatusLabel:   res.Status.String(),
		PaymentStatus: res.PaymentStatus,
		Date:          daytime.FormatDate(res.Slot.Date()),
		StartTime:     res.Slot.Start(),
		EndTime:       res.Slot.End(),
	}
}
