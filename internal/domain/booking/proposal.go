package booking

import (
	"time"

	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProposalNotPending = errs.Validation("reschedule proposal was already answered")
	ErrProposalMismatch   = errs.Validation("reschedule proposal belongs to another booking")
)

type ProposalStatus int16

const (
	ProposalPending ProposalStatus = iota + 1
	ProposalAccepted
	ProposalRejected
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalPending:
		return "PENDING"
	case ProposalAccepted:
		return "ACCEPTED"
	case ProposalRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// RescheduleProposal is the manager's offer of a different window for a
// player's request.
type RescheduleProposal struct {
	id        uuid.UUID
	bookingID uuid.UUID
	clubID    uuid.UUID
	playerID  uuid.UUID
	oldSlot   Slot
	newSlot   Slot
	status    ProposalStatus
	createdAt time.Time
	updatedAt time.Time
}

func newProposal(b *Booking, newSlot Slot, now time.Time) *RescheduleProposal {
	return &RescheduleProposal{
		id:        uuid.New(),
		bookingID: b.id,
		clubID:    b.clubID,
		playerID:  *b.playerID,
		oldSlot:   b.slot,
		newSlot:   newSlot,
		status:    ProposalPending,
		createdAt: now,
		updatedAt: now,
	}
}

type ProposalParams struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	ClubID    uuid.UUID
	PlayerID  uuid.UUID
	OldSlot   Slot
	NewSlot   Slot
	Status    ProposalStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructProposal(p ProposalParams) *RescheduleProposal {
	return &RescheduleProposal{
		id:        p.ID,
		bookingID: p.BookingID,
		clubID:    p.ClubID,
		playerID:  p.PlayerID,
		oldSlot:   p.OldSlot,
		newSlot:   p.NewSlot,
		status:    p.Status,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
}

func (p *RescheduleProposal) ID() uuid.UUID          { return p.id }
func (p *RescheduleProposal) BookingID() uuid.UUID   { return p.bookingID }
func (p *RescheduleProposal) ClubID() uuid.UUID      { return p.clubID }
func (p *RescheduleProposal) PlayerID() uuid.UUID    { return p.playerID }
func (p *RescheduleProposal) OldSlot() Slot          { return p.oldSlot }
func (p *RescheduleProposal) NewSlot() Slot          { return p.newSlot }
func (p *RescheduleProposal) Status() ProposalStatus { return p.status }
func (p *RescheduleProposal) CreatedAt() time.Time   { return p.createdAt }
func (p *RescheduleProposal) UpdatedAt() time.Time   { return p.updatedAt }

func (p *RescheduleProposal) accept(now time.Time) error {
	if p.status != ProposalPending {
		return ErrProposalNotPending
	}
	p.status = ProposalAccepted
	p.updatedAt = now
	return nil
}

func (p *RescheduleProposal) reject(now time.Time) error {
	if p.status != ProposalPending {
		return ErrProposalNotPending
	}
	p.status = ProposalRejected
	p.updatedAt = now
	return nil
}
