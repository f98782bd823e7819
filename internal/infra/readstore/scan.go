package readstore

import (
	"time"

	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type slotColumns struct {
	Date  pgtype.Date
	Start pgtype.Time
	End   pgtype.Time
}

func (c slotColumns) into(date *time.Time, start, end *daytime.TimeOfDay) error {
	var err error
	*date = pgconv.DateFromPgtype(c.Date)
	if *start, err = pgconv.TimeOfDayFromPgtype(c.Start); err != nil {
		return err
	}
	*end, err = pgconv.TimeOfDayFromPgtype(c.End)
	return err
}
