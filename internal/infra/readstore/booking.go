package readstore

import (
	"context"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingItemColumns = `b.id, b.pitch_id, p.name, b.club_id, c.name, b.player_id, u.username, b.phone,
	b.date, b.start_time, b.end_time, b.price, b.deposit, b.status, b.payment_status, b.by_owner,
	b.created_at, b.notes`

const bookingItemFrom = `FROM bookings b
JOIN pitches p ON p.id = b.pitch_id
JOIN clubs c ON c.id = b.club_id
LEFT JOIN users u ON u.id = b.player_id`

const (
	listClubBookingsSQL = `SELECT ` + bookingItemColumns + ` ` + bookingItemFrom + `
WHERE b.club_id = $1
  AND ($2::uuid IS NULL OR b.pitch_id = $2)
  AND ($3::date IS NULL OR b.date = $3)
  AND ($4::time IS NULL OR b.start_time >= $4)
  AND ($5::time IS NULL OR b.end_time <= $5)
ORDER BY b.date, b.start_time, b.id`

	getClubBookingSQL = `SELECT ` + bookingItemColumns + ` ` + bookingItemFrom + `
WHERE b.club_id = $1 AND b.id = $2`

	listBookingHistorySQL = `SELECT status, date, start_time, end_time, changed_at
FROM booking_status_history WHERE booking_id = $1
ORDER BY changed_at, id`

	getPendingProposalViewSQL = `SELECT id, new_date, new_start_time, new_end_time, created_at
FROM booking_notifications WHERE booking_id = $1 AND status = 1
ORDER BY created_at DESC LIMIT 1`

	listPlayerBookingsFirstPageSQL = `SELECT ` + bookingItemColumns + ` ` + bookingItemFrom + `
WHERE b.player_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

	listPlayerBookingsKeysetSQL = `SELECT ` + bookingItemColumns + ` ` + bookingItemFrom + `
WHERE b.player_id = $1 AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) ListForClub(ctx context.Context, clubID uuid.UUID, f queries.OwnerBookingFilter) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listClubBookingsSQL, clubID,
		pgconv.UUIDPtrToPgtype(f.PitchID), pgconv.DatePtrToPgtype(f.Date),
		pgconv.TimeOfDayPtrToPgtype(f.TimeFrom), pgconv.TimeOfDayPtrToPgtype(f.TimeTo))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list club bookings", err)
	}
	return collectBookingItems(rows)
}

func (r *BookingReadStore) FindForClub(ctx context.Context, clubID, id uuid.UUID) (*queries.BookingDetail, error) {
	item, notes, err := scanBookingItem(r.db.QueryRow(ctx, getClubBookingSQL, clubID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	detail := &queries.BookingDetail{BookingListItem: *item, Notes: notes, History: []queries.StatusHistoryView{}}

	rows, err := r.db.Query(ctx, listBookingHistorySQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking history", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			h       queries.StatusHistoryView
			status  int16
			slot    slotColumns
			changed time.Time
		)
		if err := rows.Scan(&status, &slot.Date, &slot.Start, &slot.End, &changed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking history", err)
		}
		if err := slot.into(&h.Date, &h.StartTime, &h.EndTime); err != nil {
			return nil, err
		}
		h.Status = booking.Status(status)
		h.ChangedAt = changed
		detail.History = append(detail.History, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list booking history", err)
	}

	var (
		pv   queries.ProposalView
		slot slotColumns
	)
	err = r.db.QueryRow(ctx, getPendingProposalViewSQL, id).Scan(&pv.ID, &slot.Date, &slot.Start, &slot.End, &pv.CreatedAt)
	switch {
	case err == nil:
		if err := slot.into(&pv.NewDate, &pv.NewStartTime, &pv.NewEndTime); err != nil {
			return nil, err
		}
		detail.Proposal = &pv
	case !pgconv.IsNoRows(err):
		return nil, infra.WrapRepoErr("failed to get reschedule proposal", err)
	}
	return detail, nil
}

func (r *BookingReadStore) ListForPlayer(ctx context.Context, playerID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.BookingListItem, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = r.db.Query(ctx, listPlayerBookingsFirstPageSQL, playerID, limit)
	} else {
		rows, err = r.db.Query(ctx, listPlayerBookingsKeysetSQL, playerID, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list player bookings", err)
	}
	return collectBookingItems(rows)
}

func collectBookingItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()
	out := []*queries.BookingListItem{}
	for rows.Next() {
		item, _, err := scanBookingItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return out, nil
}

func scanBookingItem(row rowScanner) (*queries.BookingListItem, string, error) {
	var (
		b               queries.BookingListItem
		playerID        pgtype.UUID
		playerName      pgtype.Text
		phone           pgtype.Text
		slot            slotColumns
		price, deposit  pgtype.Numeric
		status, payment int16
		notes           string
	)
	err := row.Scan(&b.ID, &b.PitchID, &b.PitchName, &b.ClubID, &b.ClubName, &playerID, &playerName, &phone,
		&slot.Date, &slot.Start, &slot.End, &price, &deposit, &status, &payment, &b.ByOwner,
		&b.CreatedAt, &notes)
	if err != nil {
		return nil, "", err
	}
	if err := slot.into(&b.Date, &b.StartTime, &b.EndTime); err != nil {
		return nil, "", err
	}
	if b.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
		return nil, "", err
	}
	if b.Deposit, err = pgconv.DecimalPtrFromNumeric(deposit); err != nil {
		return nil, "", err
	}
	b.PlayerID = pgconv.UUIDPtrFromPgtype(playerID)
	b.PlayerName = pgconv.StringPtrFromPgtype(playerName)
	b.Phone = pgconv.StringPtrFromPgtype(phone)
	b.Status = booking.Status(status)
	b.PaymentStatus = booking.PaymentStatus(payment)
	return &b, notes, nil
}
