package response

import (
	"time"

	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Player    string    `json:"player"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []ReviewResponse {
	return mapAll(items, func(v *queries.ReviewListItem) ReviewResponse {
		var r ReviewResponse
		copyInto(&r, v)
		return r
	})
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	SenderID  *uuid.UUID `json:"sender_id,omitempty"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromNotificationList(items []*queries.NotificationView) []NotificationResponse {
	return mapAll(items, func(v *queries.NotificationView) NotificationResponse {
		var r NotificationResponse
		copyInto(&r, v)
		return r
	})
}
