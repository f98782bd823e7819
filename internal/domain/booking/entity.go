package booking

import (
	"strings"
	"time"

	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxNotesLength = 2000

var (
	ErrInvalidTransition = errs.Validation("invalid booking status transition")
	ErrNoPlayer          = errs.Validation("booking has no player to notify")
	ErrOwnerStatus       = errs.Validation("owner bookings start as COMPLETED or PENDING_PAY")
	ErrNotBookingPlayer  = errs.Permission("booking belongs to another player")
	ErrNotEnded          = errs.Validation("booking has not ended yet")
	ErrSameSlot          = errs.Validation("proposed time is the same as the current time")
	ErrNotesTooLong      = errs.Validation("notes exceed maximum length")
	ErrUnknownAction     = errs.Validation("unknown booking action")
)

type Booking struct {
	id            uuid.UUID
	pitchID       uuid.UUID
	clubID        uuid.UUID
	playerID      *uuid.UUID
	slot          Slot
	price         decimal.Decimal
	deposit       *decimal.Decimal
	status        Status
	paymentStatus PaymentStatus
	byOwner       bool
	phone         *string
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

type OwnerBookingParams struct {
	PitchID       uuid.UUID
	ClubID        uuid.UUID
	PlayerID      *uuid.UUID
	Slot          Slot
	Price         decimal.Decimal
	Deposit       *decimal.Decimal
	Status        Status
	PaymentStatus PaymentStatus
	Phone         *string
	Notes         string
}

// NewOwnerBooking creates a walk-in booking entered by the club manager.
func NewOwnerBooking(p OwnerBookingParams, now time.Time) (*Booking, error) {
	if p.Status != StatusCompleted && p.Status != StatusPendingPay {
		return nil, ErrOwnerStatus
	}
	if err := validatePayment(p.PaymentStatus, p.Price, p.Deposit); err != nil {
		return nil, err
	}
	notes, err := normalizeNotes(p.Notes)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:            uuid.New(),
		pitchID:       p.PitchID,
		clubID:        p.ClubID,
		playerID:      p.PlayerID,
		slot:          p.Slot,
		price:         p.Price.Round(2),
		deposit:       roundPtr(p.Deposit),
		status:        p.Status,
		paymentStatus: p.PaymentStatus,
		byOwner:       true,
		phone:         normalizePhone(p.Phone),
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type PlayerBookingParams struct {
	PitchID  uuid.UUID
	ClubID   uuid.UUID
	PlayerID uuid.UUID
	Slot     Slot
	Price    decimal.Decimal
	Phone    *string
	Notes    string
}

// NewPlayerBooking creates a self-service request that waits for the manager.
func NewPlayerBooking(p PlayerBookingParams, now time.Time) (*Booking, error) {
	if err := validatePayment(PaymentUnpaid, p.Price, nil); err != nil {
		return nil, err
	}
	notes, err := normalizeNotes(p.Notes)
	if err != nil {
		return nil, err
	}
	playerID := p.PlayerID
	return &Booking{
		id:            uuid.New(),
		pitchID:       p.PitchID,
		clubID:        p.ClubID,
		playerID:      &playerID,
		slot:          p.Slot,
		price:         p.Price.Round(2),
		status:        StatusPendingManager,
		paymentStatus: PaymentUnpaid,
		byOwner:       false,
		phone:         normalizePhone(p.Phone),
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	PitchID       uuid.UUID
	ClubID        uuid.UUID
	PlayerID      *uuid.UUID
	Slot          Slot
	Price         decimal.Decimal
	Deposit       *decimal.Decimal
	Status        Status
	PaymentStatus PaymentStatus
	ByOwner       bool
	Phone         *string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:            p.ID,
		pitchID:       p.PitchID,
		clubID:        p.ClubID,
		playerID:      p.PlayerID,
		slot:          p.Slot,
		price:         p.Price,
		deposit:       p.Deposit,
		status:        p.Status,
		paymentStatus: p.PaymentStatus,
		byOwner:       p.ByOwner,
		phone:         p.Phone,
		notes:         p.Notes,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) PitchID() uuid.UUID           { return b.pitchID }
func (b *Booking) ClubID() uuid.UUID            { return b.clubID }
func (b *Booking) PlayerID() *uuid.UUID         { return b.playerID }
func (b *Booking) Slot() Slot                   { return b.slot }
func (b *Booking) Price() decimal.Decimal       { return b.price }
func (b *Booking) Deposit() *decimal.Decimal    { return b.deposit }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) ByOwner() bool                { return b.byOwner }
func (b *Booking) Phone() *string               { return b.phone }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) IsPlayer(id uuid.UUID) bool {
	return b.playerID != nil && *b.playerID == id
}

// ConfirmPayment accepts a player request and waits for payment.
func (b *Booking) ConfirmPayment(now time.Time) error {
	if b.status != StatusPendingManager {
		return b.invalid(StatusPendingPay)
	}
	b.moveTo(StatusPendingPay, now)
	return nil
}

// ProposeReschedule hands the booking back to the player with a new window.
// The booking keeps its own slot until the player accepts.
func (b *Booking) ProposeReschedule(newSlot Slot, now time.Time) (*RescheduleProposal, error) {
	if b.status != StatusPendingManager {
		return nil, b.invalid(StatusPendingPlayer)
	}
	if b.playerID == nil {
		return nil, ErrNoPlayer
	}
	if newSlot.Equal(b.slot) {
		return nil, ErrSameSlot
	}
	proposal := newProposal(b, newSlot, now)
	b.moveTo(StatusPendingPlayer, now)
	return proposal, nil
}

// RejectByOwner is the manager's refusal of a fresh request.
func (b *Booking) RejectByOwner(now time.Time) error {
	if b.status != StatusPendingManager {
		return b.invalid(StatusReject)
	}
	b.moveTo(StatusReject, now)
	return nil
}

// Reject is the general form, also used when a player declines a reschedule.
func (b *Booking) Reject(now time.Time) error {
	if b.status != StatusPendingManager && b.status != StatusPendingPlayer {
		return b.invalid(StatusReject)
	}
	b.moveTo(StatusReject, now)
	return nil
}

func (b *Booking) Dispute(now time.Time) error {
	if !b.isOwnerPendingPay() && b.status != StatusCompleted {
		return b.invalid(StatusDisputed)
	}
	b.moveTo(StatusDisputed, now)
	return nil
}

func (b *Booking) MarkNoShow(now time.Time) error {
	if !b.isOwnerPendingPay() {
		return b.invalid(StatusNoShow)
	}
	b.moveTo(StatusNoShow, now)
	return nil
}

func (b *Booking) CancelByOwner(now time.Time) error {
	if b.status != StatusCompleted && !b.isOwnerPendingPay() {
		return b.invalid(StatusCanceled)
	}
	b.moveTo(StatusCanceled, now)
	return nil
}

func (b *Booking) CancelByPlayer(playerID uuid.UUID, now time.Time) error {
	if !b.IsPlayer(playerID) {
		return ErrNotBookingPlayer
	}
	if b.status != StatusCompleted && b.status != StatusPendingPay {
		return b.invalid(StatusCanceled)
	}
	b.moveTo(StatusCanceled, now)
	return nil
}

// Complete settles an owner booking. The caller must have verified that no
// other COMPLETED booking overlaps this slot.
func (b *Booking) Complete(now time.Time) error {
	if !b.isOwnerPendingPay() {
		return b.invalid(StatusCompleted)
	}
	b.moveTo(StatusCompleted, now)
	return nil
}

// Expire closes a booking that was never settled before its slot ended.
func (b *Booking) Expire(now time.Time, loc *time.Location) error {
	if !b.status.IsPending() {
		return b.invalid(StatusExpired)
	}
	if now.Before(b.slot.EndsAt(loc)) {
		return ErrNotEnded
	}
	b.moveTo(StatusExpired, now)
	return nil
}

// AcceptReschedule moves the booking to the proposed window. The caller must
// have verified that the new window is free.
func (b *Booking) AcceptReschedule(p *RescheduleProposal, now time.Time) error {
	if b.status != StatusPendingPlayer {
		return b.invalid(StatusPendingPay)
	}
	if p.BookingID() != b.id {
		return ErrProposalMismatch
	}
	if err := p.accept(now); err != nil {
		return err
	}
	b.slot = p.NewSlot()
	b.moveTo(StatusPendingPay, now)
	return nil
}

// DeclineReschedule rejects both the proposal and the booking.
func (b *Booking) DeclineReschedule(p *RescheduleProposal, now time.Time) error {
	if p.BookingID() != b.id {
		return ErrProposalMismatch
	}
	if err := b.Reject(now); err != nil {
		return err
	}
	return p.reject(now)
}

// ApplyOwnerAction dispatches the manager actions that need no extra input.
func (b *Booking) ApplyOwnerAction(a Action, now time.Time, loc *time.Location) error {
	switch a {
	case ActionConfirmPayment:
		return b.ConfirmPayment(now)
	case ActionReject:
		return b.RejectByOwner(now)
	case ActionComplete:
		return b.Complete(now)
	case ActionCancel:
		return b.CancelByOwner(now)
	case ActionDispute:
		return b.Dispute(now)
	case ActionNoShow:
		return b.MarkNoShow(now)
	case ActionExpire:
		return b.Expire(now, loc)
	default:
		return ErrUnknownAction
	}
}

func (b *Booking) isOwnerPendingPay() bool {
	return b.status == StatusPendingPay && b.byOwner
}

func (b *Booking) moveTo(to Status, now time.Time) {
	b.status = to
	b.updatedAt = now
}

func (b *Booking) invalid(to Status) error {
	return errs.Wrapf(ErrInvalidTransition, "cannot move booking from %s to %s", b.status, to)
}

func normalizeNotes(s string) (string, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxNotesLength {
		return "", ErrNotesTooLong
	}
	return t, nil
}

func normalizePhone(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	if t == "" {
		return nil
	}
	return &t
}

func roundPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(2)
	return &r
}
