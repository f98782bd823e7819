package review

import (
	"time"

	"pitch-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	clubID    uuid.UUID
	bookingID uuid.UUID
	playerID  uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

// NewReview lets the player of a completed booking rate the club once.
// Uniqueness per booking is enforced by the caller.
func NewReview(b *booking.Booking, playerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if !b.IsPlayer(playerID) {
		return nil, ErrNotBookingPlayer
	}
	if b.Status() != booking.StatusCompleted {
		return nil, ErrBookingNotEligible
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		clubID:    b.ClubID(),
		bookingID: b.ID(),
		playerID:  playerID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}, nil
}

func Reconstruct(id, clubID, bookingID, playerID uuid.UUID, rating int, comment string, createdAt time.Time) *Review {
	return &Review{
		id:        id,
		clubID:    clubID,
		bookingID: bookingID,
		playerID:  playerID,
		rating:    Rating{value: rating},
		comment:   Comment{text: comment},
		createdAt: createdAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ClubID() uuid.UUID    { return r.clubID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) PlayerID() uuid.UUID  { return r.playerID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
