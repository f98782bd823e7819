package response

import (
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClubResponse struct {
	ID                  uuid.UUID         `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Address             string            `json:"address"`
	Latitude            *decimal.Decimal  `json:"latitude,omitempty"`
	Longitude           *decimal.Decimal  `json:"longitude,omitempty"`
	OpenTime            daytime.TimeOfDay `json:"open_time"`
	CloseTime           daytime.TimeOfDay `json:"close_time"`
	WorkingDays         map[string]bool   `json:"working_days"`
	LogoURL             string            `json:"logo"`
	RatingAvg           string            `json:"rating_avg"`
	RatingCount         int               `json:"rating_count"`
	FlexibleReservation bool              `json:"flexible_reservation"`
	IsActive            bool              `json:"is_active"`
}

func FromClubView(v *queries.ClubView) ClubResponse {
	var r ClubResponse
	copyInto(&r, v)
	return r
}

func FromClubList(items []*queries.ClubView) []ClubResponse {
	return mapAll(items, FromClubView)
}

type PitchResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	ImageURL     string            `json:"image"`
	Type         string            `json:"type"`
	SizeHigh     int               `json:"size_high"`
	SizeWidth    int               `json:"size_width"`
	IsActive     bool              `json:"is_active"`
	PriceFirst   string            `json:"price_first"`
	PriceSecond  string            `json:"price_second"`
	TimeInterval daytime.TimeOfDay `json:"time_interval"`
}

func FromPitchList(items []*queries.PitchView) []PitchResponse {
	return mapAll(items, func(v *queries.PitchView) PitchResponse {
		var r PitchResponse
		copyInto(&r, v)
		return r
	})
}

type PricingRuleResponse struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"type"`
	DayOfWeek *int              `json:"day_of_week,omitempty"`
	Date      *string           `json:"date,omitempty" copier:"-"`
	StartTime daytime.TimeOfDay `json:"start_time"`
	EndTime   daytime.TimeOfDay `json:"end_time"`
	Percent   decimal.Decimal   `json:"percent"`
}

func FromPricingRuleList(items []*queries.PricingRuleView) []PricingRuleResponse {
	return mapAll(items, func(v *queries.PricingRuleView) PricingRuleResponse {
		var r PricingRuleResponse
		copyInto(&r, v)
		if v.Date != nil {
			d := daytime.FormatDate(*v.Date)
			r.Date = &d
		}
		return r
	})
}

type PitchPriceResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	ImageURL     string            `json:"image"`
	PriceFirst   string            `json:"price_first"`
	PriceSecond  string            `json:"price_second"`
	TimeInterval daytime.TimeOfDay `json:"time_interval"`
	SizeHigh     int               `json:"size_high"`
	SizeWidth    int               `json:"size_width"`
	IsActive     bool              `json:"is_active"`
}

type OpeningDayResponse struct {
	Date      string               `json:"date"`
	StartTime daytime.TimeOfDay    `json:"start_time"`
	EndTime   daytime.TimeOfDay    `json:"end_time"`
	Percent   decimal.Decimal      `json:"percent"`
	Pitches   []PitchPriceResponse `json:"pitches" copier:"-"`
}

func FromOpeningDays(days []queries.OpeningDay) []OpeningDayResponse {
	return mapAll(days, func(d queries.OpeningDay) OpeningDayResponse {
		var r OpeningDayResponse
		copyInto(&r, &d)
		r.Pitches = mapAll(d.Pitches, func(p queries.PitchPrice) PitchPriceResponse {
			var out PitchPriceResponse
			copyInto(&out, &p)
			return out
		})
		return r
	})
}
