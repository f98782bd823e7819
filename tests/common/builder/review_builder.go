//go:build unit || e2e

package builder

import (
	"time"

	domreview "pitch-booking/internal/domain/review"
	reqdto "pitch-booking/internal/handler/dto/request"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID         uuid.UUID
	ClubID     uuid.UUID
	BookingID  uuid.UUID
	PlayerID   uuid.UUID
	PlayerName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:         uuid.New(),
		ClubID:     uuid.New(),
		BookingID:  uuid.New(),
		PlayerID:   uuid.New(),
		PlayerName: "player_one",
		Rating:     5,
		Comment:    "Great pitch, good lighting",
		CreatedAt:  time.Date(2026, 5, 10, 18, 30, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() *domreview.Review {
	return domreview.Reconstruct(r.ID, r.ClubID, r.BookingID, r.PlayerID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:        r.ID,
		Player:    r.PlayerName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = bookingID
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Lights were off half the match"
	return r
}
