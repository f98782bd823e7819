package booking

import (
	"time"

	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"
)

var (
	ErrInvalidSlot = errs.Validation("start time must be before end time")
	ErrOverlap     = errs.Validation("the pitch is already booked for part of this time")
)

// Slot is a same-day, half-open [start, end) window on one date.
type Slot struct {
	date  time.Time
	start daytime.TimeOfDay
	end   daytime.TimeOfDay
}

func NewSlot(date time.Time, start, end daytime.TimeOfDay) (Slot, error) {
	if !start.Before(end) {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{date: daytime.DateOf(date), start: start, end: end}, nil
}

func (s Slot) Date() time.Time          { return s.date }
func (s Slot) Start() daytime.TimeOfDay { return s.start }
func (s Slot) End() daytime.TimeOfDay   { return s.end }

func (s Slot) Duration() time.Duration {
	return time.Duration(s.end.Seconds()-s.start.Seconds()) * time.Second
}

// Overlaps treats touching windows (10:00-11:00 and 11:00-12:00) as free.
func (s Slot) Overlaps(o Slot) bool {
	if !s.date.Equal(o.date) {
		return false
	}
	return s.start.Before(o.end) && s.end.After(o.start)
}

func (s Slot) Equal(o Slot) bool {
	return s.date.Equal(o.date) && s.start == o.start && s.end == o.end
}

func (s Slot) EndsAt(loc *time.Location) time.Time {
	return daytime.At(s.date, s.end, loc)
}

// CheckOverlap fails when candidate intersects any of the taken slots.
func CheckOverlap(candidate Slot, taken []Slot) error {
	for _, t := range taken {
		if candidate.Overlaps(t) {
			return ErrOverlap
		}
	}
	return nil
}
