package pricing

import (
	"time"

	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRuleType = errs.Validation("rule type must be 1 (weekly) or 2 (date)")
	ErrInvalidWeekday  = errs.Validation("day_of_week must be between 0 and 6")
	ErrDateRequired    = errs.Validation("date is required for a date rule")
	ErrWeekdayRequired = errs.Validation("day_of_week is required for a weekly rule")
	ErrInvalidPercent  = errs.Validation("percent must be positive with at most 7 digits and 4 decimals")
	ErrRuleHours       = errs.Validation("end_time must be after start_time")
	ErrClosedWeekday   = errs.Validation("the club is closed on this day of the week")
	ErrDuplicateRule   = errs.Validation("a rule for this day already exists")
)

type RuleType int16

const (
	RuleWeekly RuleType = 1
	RuleDate   RuleType = 2
)

func (t RuleType) IsValid() bool {
	return t == RuleWeekly || t == RuleDate
}

func (t RuleType) String() string {
	switch t {
	case RuleWeekly:
		return "WEEKLY"
	case RuleDate:
		return "DATE"
	default:
		return "UNKNOWN"
	}
}

// Rule overrides a club's hours and price multiplier, either every week on
// one weekday or on a single date.
type Rule struct {
	id        uuid.UUID
	clubID    uuid.UUID
	ruleType  RuleType
	dayOfWeek *int
	date      *time.Time
	startTime daytime.TimeOfDay
	endTime   daytime.TimeOfDay
	percent   decimal.Decimal
}

type RuleParams struct {
	ID        uuid.UUID
	ClubID    uuid.UUID
	Type      RuleType
	DayOfWeek *int
	Date      *time.Time
	StartTime daytime.TimeOfDay
	EndTime   daytime.TimeOfDay
	Percent   decimal.Decimal
}

// NewRule validates p against the club's working days. A weekly rule on a
// day the club is closed is rejected.
func NewRule(p RuleParams, days club.WorkingDays) (*Rule, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r := ReconstructRule(p)
	if err := r.validate(days); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRule(p RuleParams) *Rule {
	r := &Rule{
		id:        p.ID,
		clubID:    p.ClubID,
		ruleType:  p.Type,
		startTime: p.StartTime,
		endTime:   p.EndTime,
		percent:   p.Percent,
	}
	switch p.Type {
	case RuleWeekly:
		r.dayOfWeek = p.DayOfWeek
	case RuleDate:
		if p.Date != nil {
			d := daytime.DateOf(*p.Date)
			r.date = &d
		}
	}
	return r
}

func (r *Rule) ID() uuid.UUID                { return r.id }
func (r *Rule) ClubID() uuid.UUID            { return r.clubID }
func (r *Rule) Type() RuleType               { return r.ruleType }
func (r *Rule) DayOfWeek() *int              { return r.dayOfWeek }
func (r *Rule) Date() *time.Time             { return r.date }
func (r *Rule) StartTime() daytime.TimeOfDay { return r.startTime }
func (r *Rule) EndTime() daytime.TimeOfDay   { return r.endTime }
func (r *Rule) Percent() decimal.Decimal     { return r.percent }

type RuleUpdate struct {
	StartTime *daytime.TimeOfDay
	EndTime   *daytime.TimeOfDay
	Percent   *decimal.Decimal
}

func (r *Rule) Apply(u RuleUpdate, days club.WorkingDays) error {
	next := *r
	if u.StartTime != nil {
		next.startTime = *u.StartTime
	}
	if u.EndTime != nil {
		next.endTime = *u.EndTime
	}
	if u.Percent != nil {
		next.percent = *u.Percent
	}
	if err := next.validate(days); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *Rule) validate(days club.WorkingDays) error {
	switch r.ruleType {
	case RuleWeekly:
		if r.dayOfWeek == nil {
			return ErrWeekdayRequired
		}
		if *r.dayOfWeek < 0 || *r.dayOfWeek > 6 {
			return ErrInvalidWeekday
		}
		if !days.IsOpen(*r.dayOfWeek) {
			return ErrClosedWeekday
		}
	case RuleDate:
		if r.date == nil {
			return ErrDateRequired
		}
	default:
		return ErrInvalidRuleType
	}
	if !r.startTime.Before(r.endTime) {
		return ErrRuleHours
	}
	return ValidatePercent(r.percent)
}

var maxPercent = decimal.New(1000, 0)

// ValidatePercent enforces NUMERIC(7,4) with a positive value.
func ValidatePercent(p decimal.Decimal) error {
	if !p.IsPositive() {
		return ErrInvalidPercent
	}
	if !p.Equal(p.Truncate(4)) {
		return ErrInvalidPercent
	}
	if p.GreaterThanOrEqual(maxPercent) {
		return ErrInvalidPercent
	}
	return nil
}

// Matches reports whether the rule applies to date.
func (r *Rule) Matches(date time.Time) bool {
	switch r.ruleType {
	case RuleDate:
		return r.date != nil && r.date.Equal(daytime.DateOf(date))
	case RuleWeekly:
		return r.dayOfWeek != nil && *r.dayOfWeek == WeekdayIndex(date)
	default:
		return false
	}
}
