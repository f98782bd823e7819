package queries

import (
	"context"
	"time"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	// ListForClub orders by date then start time.
	ListForClub(ctx context.Context, clubID uuid.UUID, filter OwnerBookingFilter) ([]*BookingListItem, error)
	FindForClub(ctx context.Context, clubID, id uuid.UUID) (*BookingDetail, error)
	// ListForPlayer is newest first, starting after the keyset when given.
	ListForPlayer(ctx context.Context, playerID uuid.UUID, after *Keyset, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	ListForOwner(ctx context.Context, actor user.Actor, filter OwnerBookingFilter) ([]*BookingListItem, error)
	GetForOwner(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingDetail, error)
	ListForPlayer(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueries struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueries{store: store}
}

func (q *bookingQueries) ListForOwner(ctx context.Context, actor user.Actor, filter OwnerBookingFilter) ([]*BookingListItem, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	return q.store.ListForClub(ctx, clubID, filter)
}

func (q *bookingQueries) GetForOwner(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingDetail, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	b, err := q.store.FindForClub(ctx, clubID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueries) ListForPlayer(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListForPlayer(ctx, actor.UserID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(b *BookingListItem) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	return rows, next, nil
}
