// Package event holds the domain events raised by write use cases and
// consumed by the fan-out handlers.
package event

import (
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/review"

	"github.com/google/uuid"
)

type Name string

const (
	NameBookingCreated       Name = "booking.created"
	NameBookingStatusChanged Name = "booking.status_changed"
	NameRescheduleProposed   Name = "booking.reschedule_proposed"
	NameReviewCreated        Name = "review.created"
)

type Event interface {
	Name() Name
	OccurredAt() time.Time
}

type BookingCreated struct {
	Booking *booking.Booking
	At      time.Time
}

func (e BookingCreated) Name() Name            { return NameBookingCreated }
func (e BookingCreated) OccurredAt() time.Time { return e.At }

type BookingStatusChanged struct {
	Booking *booking.Booking
	From    booking.Status
	At      time.Time
}

func (e BookingStatusChanged) Name() Name            { return NameBookingStatusChanged }
func (e BookingStatusChanged) OccurredAt() time.Time { return e.At }

type RescheduleProposed struct {
	Proposal *booking.RescheduleProposal
	At       time.Time
}

func (e RescheduleProposed) Name() Name            { return NameRescheduleProposed }
func (e RescheduleProposed) OccurredAt() time.Time { return e.At }

type ReviewCreated struct {
	Review *review.Review
	At     time.Time
}

func (e ReviewCreated) Name() Name            { return NameReviewCreated }
func (e ReviewCreated) OccurredAt() time.Time { return e.At }

// Envelope is the broker representation of an event.
type Envelope struct {
	ID         uuid.UUID      `json:"id"`
	Name       Name           `json:"name"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func ToEnvelope(e Event) Envelope {
	env := Envelope{ID: uuid.New(), Name: e.Name(), OccurredAt: e.OccurredAt()}
	switch ev := e.(type) {
	case BookingCreated:
		env.Payload = bookingPayload(ev.Booking)
	case BookingStatusChanged:
		env.Payload = bookingPayload(ev.Booking)
		env.Payload["from_status"] = ev.From.String()
	case RescheduleProposed:
		env.Payload = map[string]any{
			"proposal_id": ev.Proposal.ID(),
			"booking_id":  ev.Proposal.BookingID(),
			"club_id":     ev.Proposal.ClubID(),
			"player_id":   ev.Proposal.PlayerID(),
		}
	case ReviewCreated:
		env.Payload = map[string]any{
			"review_id":  ev.Review.ID(),
			"club_id":    ev.Review.ClubID(),
			"booking_id": ev.Review.BookingID(),
			"rating":     ev.Review.Rating().Value(),
		}
	default:
		env.Payload = map[string]any{}
	}
	return env
}

func bookingPayload(b *booking.Booking) map[string]any {
	return map[string]any{
		"booking_id": b.ID(),
		"pitch_id":   b.PitchID(),
		"club_id":    b.ClubID(),
		"status":     b.Status().String(),
	}
}
