//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// AllWeek opens every weekday.
const AllWeek = `{"0": true, "1": true, "2": true, "3": true, "4": true, "5": true, "6": true}`

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, role, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (username) DO NOTHING",
		userID, username, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

type ClubFixture struct {
	Name        string
	OpenTime    string
	CloseTime   string
	WorkingDays string
	IsActive    bool
}

func DefaultClub() ClubFixture {
	return ClubFixture{
		Name:        "Riyadh Sports Club",
		OpenTime:    "08:00",
		CloseTime:   "23:00",
		WorkingDays: AllWeek,
		IsActive:    true,
	}
}

func CreateTestClub(t *testing.T, db DBLike, managerID uuid.UUID, c ClubFixture) uuid.UUID {
	t.Helper()

	clubID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO clubs (id, manager_id, name, open_time, close_time, working_days, is_active)
VALUES ($1, $2, $3, $4::time, $5::time, $6::jsonb, $7)`,
		clubID, managerID, c.Name, c.OpenTime, c.CloseTime, c.WorkingDays, c.IsActive)
	require.NoError(t, err)

	return clubID
}

// CreateTestPitch inserts an active 40x20 pitch priced 100 before 17:00 and
// 150 from 17:00.
func CreateTestPitch(t *testing.T, db DBLike, clubID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	pitchID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO pitches (id, club_id, name, type, size_high, size_width, price_first, price_second, time_interval)
VALUES ($1, $2, $3, 'football', 40, 20, 100, 150, '17:00')`,
		pitchID, clubID, name)
	require.NoError(t, err)

	return pitchID
}

type BookingFixture struct {
	PitchID  uuid.UUID
	ClubID   uuid.UUID
	PlayerID *uuid.UUID
	Date     time.Time
	Start    string
	End      string
	Price    string
	Status   int16
	ByOwner  bool
}

func CreateTestBooking(t *testing.T, db DBLike, b BookingFixture) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings (id, pitch_id, club_id, player_id, date, start_time, end_time, price, status, payment_status, by_owner)
VALUES ($1, $2, $3, $4, $5::date, $6::time, $7::time, $8::numeric, $9, 1, $10)`,
		bookingID, b.PitchID, b.ClubID, b.PlayerID, b.Date.Format(time.DateOnly), b.Start, b.End, b.Price, b.Status, b.ByOwner)
	require.NoError(t, err)

	return bookingID
}

func BookingStatus(t *testing.T, db DBLike, id uuid.UUID) int16 {
	t.Helper()

	var status int16
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except the migrations bookkeeping.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
