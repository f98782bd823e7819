package repository

import (
	"context"

	"pitch-booking/internal/domain/review"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertReviewSQL = `INSERT INTO reviews (id, club_id, booking_id, player_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	reviewExistsForBookingSQL = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	_, err := tx.Exec(ctx, insertReviewSQL,
		rev.ID(), rev.ClubID(), rev.BookingID(), rev.PlayerID(),
		int16(rev.Rating().Value()), rev.Comment().String(), rev.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, reviewExistsForBookingSQL, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review", err)
	}
	return exists, nil
}
