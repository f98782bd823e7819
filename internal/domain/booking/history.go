package booking

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistory is an immutable snapshot written whenever a booking is
// created or changes status.
type StatusHistory struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Status    Status
	Slot      Slot
	ChangedAt time.Time
}

func NewStatusHistory(b *Booking, now time.Time) StatusHistory {
	return StatusHistory{
		ID:        uuid.New(),
		BookingID: b.id,
		Status:    b.status,
		Slot:      b.slot,
		ChangedAt: now,
	}
}
