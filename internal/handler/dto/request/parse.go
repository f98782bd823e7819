package request

import (
	"time"

	"pitch-booking/internal/pkg/daytime"

	"github.com/shopspring/decimal"
)

// The binding tags have already checked the formats below; the parsers
// still return errors so a DTO used without binding fails safely.

func parseTimeOfDayPtr(s *string) (*daytime.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := daytime.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := daytime.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDecimalPtr(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type slotFields struct {
	date  time.Time
	start daytime.TimeOfDay
	end   daytime.TimeOfDay
}

func parseSlot(date, start, end string) (slotFields, error) {
	var f slotFields
	var err error
	if f.date, err = daytime.ParseDate(date); err != nil {
		return f, err
	}
	if f.start, err = daytime.Parse(start); err != nil {
		return f, err
	}
	if f.end, err = daytime.Parse(end); err != nil {
		return f, err
	}
	return f, nil
}
