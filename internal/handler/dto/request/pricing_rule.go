package request

import (
	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/pkg/daytime"

	"github.com/shopspring/decimal"
)

type CreatePricingRuleRequest struct {
	Type      int16   `json:"type" binding:"required,oneof=1 2"`
	DayOfWeek *int    `json:"day_of_week" binding:"omitempty,min=0,max=6"`
	Date      *string `json:"date" binding:"omitempty,date"`
	StartTime string  `json:"start_time" binding:"required,timeofday"`
	EndTime   string  `json:"end_time" binding:"required,timeofday"`
	Percent   string  `json:"percent" binding:"required,decimal"`
}

func (r CreatePricingRuleRequest) ToDomain() (pricing.RuleParams, error) {
	p := pricing.RuleParams{Type: pricing.RuleType(r.Type), DayOfWeek: r.DayOfWeek}
	var err error
	if p.Date, err = parseDatePtr(r.Date); err != nil {
		return p, err
	}
	if p.StartTime, err = daytime.Parse(r.StartTime); err != nil {
		return p, err
	}
	if p.EndTime, err = daytime.Parse(r.EndTime); err != nil {
		return p, err
	}
	if p.Percent, err = decimal.NewFromString(r.Percent); err != nil {
		return p, err
	}
	return p, nil
}

type UpdatePricingRuleRequest struct {
	StartTime *string `json:"start_time" binding:"omitempty,timeofday"`
	EndTime   *string `json:"end_time" binding:"omitempty,timeofday"`
	Percent   *string `json:"percent" binding:"omitempty,decimal"`
}

func (r UpdatePricingRuleRequest) ToDomain() (pricing.RuleUpdate, error) {
	var u pricing.RuleUpdate
	var err error
	if u.StartTime, err = parseTimeOfDayPtr(r.StartTime); err != nil {
		return u, err
	}
	if u.EndTime, err = parseTimeOfDayPtr(r.EndTime); err != nil {
		return u, err
	}
	if u.Percent, err = parseDecimalPtr(r.Percent); err != nil {
		return u, err
	}
	return u, nil
}

type OpeningPricesQuery struct {
	NumberOfDay *int `form:"number_of_day" binding:"omitempty,min=1,max=60"`
}
