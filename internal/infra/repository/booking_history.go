package repository

import (
	"context"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
)

const insertStatusHistorySQL = `INSERT INTO booking_status_history
(id, booking_id, status, date, start_time, end_time, changed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type StatusHistoryRepository struct{}

func NewStatusHistoryRepository() *StatusHistoryRepository {
	return &StatusHistoryRepository{}
}

func (r *StatusHistoryRepository) Append(ctx context.Context, tx db.DBTX, h booking.StatusHistory) error {
	slot := slotArgs(h.Slot)
	_, err := tx.Exec(ctx, insertStatusHistorySQL,
		h.ID, h.BookingID, int16(h.Status), slot.Date, slot.Start, slot.End, h.ChangedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to append status history", err)
	}
	return nil
}
