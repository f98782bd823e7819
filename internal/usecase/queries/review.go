package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	// ListByClub is newest first, starting after the keyset when given.
	ListByClub(ctx context.Context, clubID uuid.UUID, after *Keyset, limit int32) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	ListByClub(ctx context.Context, clubID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByClub(ctx context.Context, clubID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.repo.ListByClub(ctx, clubID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(r *ReviewListItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}
