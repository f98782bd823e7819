package pricing

import (
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrNegativeRate = errs.Validation("prices cannot be negative")

var (
	secondsPerHour = decimal.NewFromInt(3600)
	// DefaultPercent applies on open days without a rule.
	DefaultPercent = decimal.NewFromInt(1)
)

// Rates are a pitch's two hourly prices. PriceFirst applies before Cutoff,
// PriceSecond from Cutoff on.
type Rates struct {
	PriceFirst  decimal.Decimal
	PriceSecond decimal.Decimal
	Cutoff      daytime.TimeOfDay
}

func (r Rates) Validate() error {
	if r.PriceFirst.IsNegative() || r.PriceSecond.IsNegative() {
		return ErrNegativeRate
	}
	return nil
}

// CalculatePrice pro-rates [start, end) across the cutoff. An end at or
// before start means the window runs past midnight.
func CalculatePrice(r Rates, percent decimal.Decimal, start, end daytime.TimeOfDay) decimal.Decimal {
	s := start.Seconds()
	e := end.Seconds()
	c := r.Cutoff.Seconds()
	if e <= s {
		e += daytime.SecondsPerDay
	}

	before := max(0, min(e, c)-s)
	after := max(0, e-max(s, c))

	// Divide once so rounding sees the exact quotient.
	weighted := decimal.NewFromInt(int64(before)).Mul(r.PriceFirst).
		Add(decimal.NewFromInt(int64(after)).Mul(r.PriceSecond))
	return weighted.Mul(percent).DivRound(secondsPerHour, 2)
}

// AdjustedRate is price*percent rounded half-up to 2 places.
func AdjustedRate(price, percent decimal.Decimal) decimal.Decimal {
	return price.Mul(percent).Round(2)
}
