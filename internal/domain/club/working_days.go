package club

import (
	"strconv"

	"pitch-booking/internal/pkg/errs"
)

var ErrInvalidWorkingDays = errs.Validation(`working_days must have exactly the keys "0".."6" with boolean values`)

// WorkingDays is indexed by the club weekday index, Saturday=0 through Friday=6.
type WorkingDays [7]bool

func ParseWorkingDays(m map[string]bool) (WorkingDays, error) {
	var wd WorkingDays
	if len(m) != len(wd) {
		return wd, ErrInvalidWorkingDays
	}
	for i := range wd {
		v, ok := m[strconv.Itoa(i)]
		if !ok {
			return WorkingDays{}, ErrInvalidWorkingDays
		}
		wd[i] = v
	}
	return wd, nil
}

func (wd WorkingDays) IsOpen(idx int) bool {
	if idx < 0 || idx >= len(wd) {
		return false
	}
	return wd[idx]
}

func (wd WorkingDays) Map() map[string]bool {
	m := make(map[string]bool, len(wd))
	for i, v := range wd {
		m[strconv.Itoa(i)] = v
	}
	return m
}
