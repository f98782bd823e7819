package queries

import (
	"time"

	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor   = errs.Validation("invalid cursor")
	ErrClubNotFound    = errs.NotFound("club not found")
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrTeamNotFound    = errs.NotFound("team not found or is inactive")
	ErrInvalidDays     = errs.Validation("number_of_day must be between 1 and 60")
)

// MediaResolver turns a stored media path into a public URL.
type MediaResolver interface {
	URL(path string) string
}

// Keyset is the decoded position after which the next page starts.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

func decodeCursor(c *Cursor) (*Keyset, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	createdAt, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &Keyset{CreatedAt: createdAt, ID: id}, nil
}

// page trims the extra row fetched to detect a following page and builds the
// cursor pointing after the last returned row.
func page[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	createdAt, id := key(rows[limit-1])
	return rows, &Cursor{After: EncodeAfterCursor(createdAt, id)}
}
