package notification

import (
	"fmt"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const TypeBooking = "Booking Notification"

var ErrNotFound = errs.NotFound("notification not found")

type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	senderID  *uuid.UUID
	title     string
	message   string
	kind      string
	isRead    bool
	createdAt time.Time
}

func New(userID uuid.UUID, senderID *uuid.UUID, title, message, kind string, now time.Time) *Notification {
	return &Notification{
		id:        uuid.New(),
		userID:    userID,
		senderID:  senderID,
		title:     title,
		message:   message,
		kind:      kind,
		createdAt: now,
	}
}

func Reconstruct(id, userID uuid.UUID, senderID *uuid.UUID, title, message, kind string, isRead bool, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		senderID:  senderID,
		title:     title,
		message:   message,
		kind:      kind,
		isRead:    isRead,
		createdAt: createdAt,
	}
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) SenderID() *uuid.UUID { return n.senderID }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Kind() string         { return n.kind }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead is only allowed for the addressee; anyone else sees not found.
func (n *Notification) MarkRead(userID uuid.UUID) error {
	if n.userID != userID {
		return ErrNotFound
	}
	n.isRead = true
	return nil
}

// ForReschedule builds the message a player receives when the club proposes
// a different time for their booking.
func ForReschedule(p *booking.RescheduleProposal, clubName string, managerID uuid.UUID, now time.Time) *Notification {
	sender := managerID
	title := fmt.Sprintf("%s proposed a new time", clubName)
	return New(p.PlayerID(), &sender, title, RescheduleMessage(clubName, p.OldSlot(), p.NewSlot()), TypeBooking, now)
}

func RescheduleMessage(clubName string, old, proposed booking.Slot) string {
	return fmt.Sprintf(
		"%s cannot host your booking on %s from %s to %s. They proposed %s from %s to %s instead. Please accept or reject the new time.",
		clubName,
		daytime.FormatDate(old.Date()), old.Start().HHMM(), old.End().HHMM(),
		daytime.FormatDate(proposed.Date()), proposed.Start().HHMM(), proposed.End().HHMM(),
	)
}
