// Package daytime holds the wall-clock primitives bookings are made of: a
// calendar date and a time of day without a date.
package daytime

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pitch-booking/internal/pkg/errs"
)

const SecondsPerDay = 24 * 60 * 60

var ErrInvalidTimeOfDay = errs.Validation("time of day must be HH:MM or HH:MM:SS")

// TimeOfDay is a number of seconds since midnight in [0, 86400).
type TimeOfDay struct {
	sec int
}

func New(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{sec: hour*3600 + minute*60 + second}, nil
}

func MustNew(hour, minute, second int) TimeOfDay {
	t, err := New(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

func FromSeconds(sec int) (TimeOfDay, error) {
	if sec < 0 || sec >= SecondsPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{sec: sec}, nil
}

// Parse accepts "HH:MM" and "HH:MM:SS".
func Parse(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 {
			return TimeOfDay{}, ErrInvalidTimeOfDay
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, ErrInvalidTimeOfDay
		}
		nums[i] = n
	}
	return New(nums[0], nums[1], nums[2])
}

func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Seconds() int { return t.sec }
func (t TimeOfDay) Hour() int    { return t.sec / 3600 }
func (t TimeOfDay) Minute() int  { return t.sec % 3600 / 60 }
func (t TimeOfDay) Second() int  { return t.sec % 60 }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.sec < o.sec }
func (t TimeOfDay) After(o TimeOfDay) bool  { return t.sec > o.sec }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// HHMM is the short form used in user-facing messages.
func (t TimeOfDay) HHMM() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
