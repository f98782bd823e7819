package repository

import (
	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// slotColumns holds the three columns every slot is stored as.
type slotColumns struct {
	Date  pgtype.Date
	Start pgtype.Time
	End   pgtype.Time
}

func slotArgs(s booking.Slot) slotColumns {
	return slotColumns{
		Date:  pgconv.DateToPgtype(s.Date()),
		Start: pgconv.TimeOfDayToPgtype(s.Start()),
		End:   pgconv.TimeOfDayToPgtype(s.End()),
	}
}

func (c slotColumns) slot() (booking.Slot, error) {
	start, err := pgconv.TimeOfDayFromPgtype(c.Start)
	if err != nil {
		return booking.Slot{}, infra.WrapRepoErr("invalid start time", err, infra.KindDBFailure)
	}
	end, err := pgconv.TimeOfDayFromPgtype(c.End)
	if err != nil {
		return booking.Slot{}, infra.WrapRepoErr("invalid end time", err, infra.KindDBFailure)
	}
	s, err := booking.NewSlot(pgconv.DateFromPgtype(c.Date), start, end)
	if err != nil {
		return booking.Slot{}, infra.WrapRepoErr("invalid stored slot", err, infra.KindDBFailure)
	}
	return s, nil
}

func statusCodes(statuses []booking.Status) []int16 {
	out := make([]int16, len(statuses))
	for i, s := range statuses {
		out[i] = int16(s)
	}
	return out
}
