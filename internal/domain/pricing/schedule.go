package pricing

import (
	"time"

	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/pkg/daytime"

	"github.com/shopspring/decimal"
)

// WeekdayIndex re-bases the week on Saturday: Saturday=0 ... Friday=6.
func WeekdayIndex(date time.Time) int {
	// Monday-based index shifted by two, written against time.Weekday
	// (Sunday=0): ((wd+6)%7 + 2) % 7 == (wd+1) % 7.
	return (int(date.Weekday()) + 1) % 7
}

// Hours are a club's default opening hours.
type Hours struct {
	Open        daytime.TimeOfDay
	Close       daytime.TimeOfDay
	WorkingDays club.WorkingDays
}

func HoursOf(c *club.Club) Hours {
	return Hours{Open: c.OpenTime(), Close: c.CloseTime(), WorkingDays: c.WorkingDays()}
}

type Source int

const (
	SourceDefault Source = iota
	SourceWeekly
	SourceDate
)

// DaySchedule is the resolved opening window and multiplier of one date.
type DaySchedule struct {
	Date    time.Time
	Start   daytime.TimeOfDay
	End     daytime.TimeOfDay
	Percent decimal.Decimal
	Source  Source
}

// Contains reports whether [start, end) lies inside the day's hours.
func (d DaySchedule) Contains(start, end daytime.TimeOfDay) bool {
	return !start.Before(d.Start) && !end.After(d.End)
}

// Dates lists days consecutive dates starting at from.
func Dates(from time.Time, days int) []time.Time {
	out := make([]time.Time, 0, max(days, 0))
	start := daytime.DateOf(from)
	for i := range days {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// Resolve picks, for every date in the window, a date rule over a weekly rule
// over the club defaults. Closed days without a rule are left out.
func Resolve(h Hours, rules []*Rule, from time.Time, days int) []DaySchedule {
	byDate := make(map[time.Time]*Rule)
	byWeekday := make(map[int]*Rule)
	for _, r := range rules {
		switch r.Type() {
		case RuleDate:
			if r.Date() != nil {
				byDate[*r.Date()] = r
			}
		case RuleWeekly:
			if r.DayOfWeek() != nil {
				byWeekday[*r.DayOfWeek()] = r
			}
		}
	}

	out := make([]DaySchedule, 0, days)
	for _, date := range Dates(from, days) {
		if r, ok := byDate[date]; ok {
			out = append(out, fromRule(date, r, SourceDate))
			continue
		}
		idx := WeekdayIndex(date)
		if r, ok := byWeekday[idx]; ok {
			out = append(out, fromRule(date, r, SourceWeekly))
			continue
		}
		if h.WorkingDays.IsOpen(idx) {
			out = append(out, DaySchedule{
				Date:    date,
				Start:   h.Open,
				End:     h.Close,
				Percent: DefaultPercent,
				Source:  SourceDefault,
			})
		}
	}
	return out
}

// ResolveDay resolves a single date. ok is false when the club is closed.
func ResolveDay(h Hours, rules []*Rule, date time.Time) (DaySchedule, bool) {
	res := Resolve(h, rules, date, 1)
	if len(res) == 0 {
		return DaySchedule{}, false
	}
	return res[0], true
}

func fromRule(date time.Time, r *Rule, src Source) DaySchedule {
	return DaySchedule{
		Date:    date,
		Start:   r.StartTime(),
		End:     r.EndTime(),
		Percent: r.Percent(),
		Source:  src,
	}
}
