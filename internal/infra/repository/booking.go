package repository

import (
	"context"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, pitch_id, club_id, player_id, date, start_time, end_time,
	price, deposit, status, payment_status, by_owner, phone, notes, created_at, updated_at`

const (
	insertBookingSQL = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	selectBookingForUpdateSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	updateBookingStateSQL = `UPDATE bookings
SET status = $2, date = $3, start_time = $4, end_time = $5, updated_at = $6
WHERE id = $1`

	selectSlotsInStatusSQL = `SELECT date, start_time, end_time FROM bookings
WHERE pitch_id = $1 AND date = $2 AND status = ANY($3) AND id <> $4`

	lockPitchDaySQL = `SELECT pg_advisory_xact_lock(hashtext($1))`
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	slot := slotArgs(b.Slot())
	_, err := tx.Exec(ctx, insertBookingSQL,
		b.ID(), b.PitchID(), b.ClubID(), pgconv.UUIDPtrToPgtype(b.PlayerID()),
		slot.Date, slot.Start, slot.End,
		pgconv.NumericFromDecimal(b.Price()), pgconv.NumericPtrFromDecimal(b.Deposit()),
		int16(b.Status()), int16(b.PaymentStatus()), b.ByOwner(),
		pgconv.StringPtrToPgtype(b.Phone()), b.Notes(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, err := scanBooking(tx.QueryRow(ctx, selectBookingForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateState(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	slot := slotArgs(b.Slot())
	tag, err := tx.Exec(ctx, updateBookingStateSQL,
		b.ID(), int16(b.Status()), slot.Date, slot.Start, slot.End, b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SlotsInStatus(ctx context.Context, tx db.DBTX, pitchID uuid.UUID, date time.Time, statuses []booking.Status, exclude uuid.UUID) ([]booking.Slot, error) {
	rows, err := tx.Query(ctx, selectSlotsInStatusSQL, pitchID, pgconv.DateToPgtype(date), statusCodes(statuses), exclude)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}
	defer rows.Close()

	var out []booking.Slot
	for rows.Next() {
		var c slotColumns
		if err := rows.Scan(&c.Date, &c.Start, &c.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot", err)
		}
		s, err := c.slot()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}
	return out, nil
}

// LockPitchDay takes a transaction-scoped advisory lock keyed on the pitch
// and date, released on commit or rollback.
func (r *BookingRepository) LockPitchDay(ctx context.Context, tx db.DBTX, pitchID uuid.UUID, date time.Time) error {
	key := pitchID.String() + "/" + daytime.FormatDate(date)
	if _, err := tx.Exec(ctx, lockPitchDaySQL, key); err != nil {
		return infra.WrapRepoErr("failed to lock pitch day", err)
	}
	return nil
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		p                    booking.ReconstructParams
		playerID             pgtype.UUID
		slot                 slotColumns
		price, deposit       pgtype.Numeric
		status, payment      int16
		phone                pgtype.Text
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&p.ID, &p.PitchID, &p.ClubID, &playerID, &slot.Date, &slot.Start, &slot.End,
		&price, &deposit, &status, &payment, &p.ByOwner, &phone, &p.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if p.Slot, err = slot.slot(); err != nil {
		return nil, err
	}
	if p.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
		return nil, err
	}
	if p.Deposit, err = pgconv.DecimalPtrFromNumeric(deposit); err != nil {
		return nil, err
	}
	p.PlayerID = pgconv.UUIDPtrFromPgtype(playerID)
	p.Status = booking.Status(status)
	p.PaymentStatus = booking.PaymentStatus(payment)
	p.Phone = pgconv.StringPtrFromPgtype(phone)
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return booking.Reconstruct(p), nil
}
