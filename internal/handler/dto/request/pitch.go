package request

import (
	"pitch-booking/internal/domain/pitch"
	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/pkg/daytime"

	"github.com/shopspring/decimal"
)

type CreatePitchRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Image        string `json:"image" binding:"max=255"`
	Type         string `json:"type" binding:"required,max=50"`
	SizeHigh     int    `json:"size_high" binding:"required,min=1"`
	SizeWidth    int    `json:"size_width" binding:"required,min=1"`
	PriceFirst   string `json:"price_first" binding:"required,decimal"`
	PriceSecond  string `json:"price_second" binding:"required,decimal"`
	TimeInterval string `json:"time_interval" binding:"required,timeofday"`
	IsActive     *bool  `json:"is_active"`
}

func (r CreatePitchRequest) ToDomain() (pitch.Params, error) {
	first, err := decimal.NewFromString(r.PriceFirst)
	if err != nil {
		return pitch.Params{}, err
	}
	second, err := decimal.NewFromString(r.PriceSecond)
	if err != nil {
		return pitch.Params{}, err
	}
	cutoff, err := daytime.Parse(r.TimeInterval)
	if err != nil {
		return pitch.Params{}, err
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return pitch.Params{
		Name:      r.Name,
		Image:     r.Image,
		Type:      r.Type,
		SizeHigh:  r.SizeHigh,
		SizeWidth: r.SizeWidth,
		IsActive:  active,
		Rates:     pricing.Rates{PriceFirst: first, PriceSecond: second, Cutoff: cutoff},
	}, nil
}

type UpdatePitchRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Image        *string `json:"image" binding:"omitempty,max=255"`
	Type         *string `json:"type" binding:"omitempty,max=50"`
	SizeHigh     *int    `json:"size_high" binding:"omitempty,min=1"`
	SizeWidth    *int    `json:"size_width" binding:"omitempty,min=1"`
	PriceFirst   *string `json:"price_first" binding:"omitempty,decimal"`
	PriceSecond  *string `json:"price_second" binding:"omitempty,decimal"`
	TimeInterval *string `json:"time_interval" binding:"omitempty,timeofday"`
}

func (r UpdatePitchRequest) ToDomain() (pitch.Update, error) {
	u := pitch.Update{
		Name:      r.Name,
		Image:     r.Image,
		Type:      r.Type,
		SizeHigh:  r.SizeHigh,
		SizeWidth: r.SizeWidth,
	}
	var err error
	if u.PriceFirst, err = parseDecimalPtr(r.PriceFirst); err != nil {
		return u, err
	}
	if u.PriceSecond, err = parseDecimalPtr(r.PriceSecond); err != nil {
		return u, err
	}
	if u.Cutoff, err = parseTimeOfDayPtr(r.TimeInterval); err != nil {
		return u, err
	}
	return u, nil
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
