package daytime

import (
	"time"

	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errs.Validation("date must be YYYY-MM-DD")

// DateOf drops the clock part and pins the date to UTC midnight so dates
// compare with == and round-trip through PostgreSQL DATE unchanged.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today is the current calendar date in loc.
func Today(c clock.Clock, loc *time.Location) time.Time {
	return DateOf(c.Now().In(loc))
}

// At combines a date and a time of day into an instant in loc.
func At(date time.Time, t TimeOfDay, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
}
