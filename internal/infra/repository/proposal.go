package repository

import (
	"context"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertProposalSQL = `INSERT INTO booking_notifications
(id, booking_id, club_id, player_id, old_date, old_start_time, old_end_time,
 new_date, new_start_time, new_end_time, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	selectPendingProposalForUpdateSQL = `SELECT id, booking_id, club_id, player_id,
	old_date, old_start_time, old_end_time, new_date, new_start_time, new_end_time,
	status, created_at, updated_at
FROM booking_notifications
WHERE booking_id = $1 AND status = 1
ORDER BY created_at DESC
LIMIT 1
FOR UPDATE`

	updateProposalStatusSQL = `UPDATE booking_notifications SET status = $2, updated_at = $3 WHERE id = $1`
)

type ProposalRepository struct{}

func NewProposalRepository() *ProposalRepository {
	return &ProposalRepository{}
}

func (r *ProposalRepository) Create(ctx context.Context, tx db.DBTX, p *booking.RescheduleProposal) error {
	old := slotArgs(p.OldSlot())
	next := slotArgs(p.NewSlot())
	_, err := tx.Exec(ctx, insertProposalSQL,
		p.ID(), p.BookingID(), p.ClubID(), p.PlayerID(),
		old.Date, old.Start, old.End, next.Date, next.Start, next.End,
		int16(p.Status()), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reschedule proposal", err)
	}
	return nil
}

func (r *ProposalRepository) FindPendingForUpdate(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (*booking.RescheduleProposal, error) {
	var (
		p        booking.ProposalParams
		old, nxt slotColumns
		status   int16
	)
	err := tx.QueryRow(ctx, selectPendingProposalForUpdateSQL, bookingID).Scan(
		&p.ID, &p.BookingID, &p.ClubID, &p.PlayerID,
		&old.Date, &old.Start, &old.End, &nxt.Date, &nxt.Start, &nxt.End,
		&status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pending proposal", err)
	}
	if p.OldSlot, err = old.slot(); err != nil {
		return nil, err
	}
	if p.NewSlot, err = nxt.slot(); err != nil {
		return nil, err
	}
	p.Status = booking.ProposalStatus(status)
	return booking.ReconstructProposal(p), nil
}

func (r *ProposalRepository) UpdateStatus(ctx context.Context, tx db.DBTX, p *booking.RescheduleProposal) error {
	if _, err := tx.Exec(ctx, updateProposalStatusSQL, p.ID(), int16(p.Status()), p.UpdatedAt()); err != nil {
		return infra.WrapRepoErr("failed to update reschedule proposal", err)
	}
	return nil
}
