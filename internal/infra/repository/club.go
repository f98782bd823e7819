package repository

import (
	"context"
	"time"

	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const clubColumns = `id, manager_id, name, description, address, latitude, longitude,
	open_time, close_time, working_days, logo, rating_avg, rating_count,
	flexible_reservation, is_active, created_at, updated_at`

const (
	selectClubSQL          = `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	selectClubForUpdateSQL = selectClubSQL + ` FOR UPDATE`

	updateClubSQL = `UPDATE clubs
SET name = $2, description = $3, address = $4, latitude = $5, longitude = $6,
    open_time = $7, close_time = $8, working_days = $9, logo = $10,
    flexible_reservation = $11, updated_at = $12
WHERE id = $1`

	updateClubRatingSQL = `UPDATE clubs SET rating_avg = $2, rating_count = $3, updated_at = $4 WHERE id = $1`
)

type ClubRepository struct{}

func NewClubRepository() *ClubRepository {
	return &ClubRepository{}
}

func (r *ClubRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*club.Club, error) {
	c, err := scanClub(tx.QueryRow(ctx, selectClubSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get club", err)
	}
	return c, nil
}

func (r *ClubRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*club.Club, error) {
	c, err := scanClub(tx.QueryRow(ctx, selectClubForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock club", err)
	}
	return c, nil
}

func (r *ClubRepository) Update(ctx context.Context, tx db.DBTX, c *club.Club) error {
	_, err := tx.Exec(ctx, updateClubSQL,
		c.ID(), c.Name(), c.Description(), c.Address(),
		pgconv.NumericPtrFromDecimal(c.Latitude()), pgconv.NumericPtrFromDecimal(c.Longitude()),
		pgconv.TimeOfDayToPgtype(c.OpenTime()), pgconv.TimeOfDayToPgtype(c.CloseTime()),
		c.WorkingDays().Map(), c.Logo(), c.FlexibleReservation(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update club", err)
	}
	return nil
}

func (r *ClubRepository) UpdateRating(ctx context.Context, tx db.DBTX, c *club.Club) error {
	_, err := tx.Exec(ctx, updateClubRatingSQL,
		c.ID(), pgconv.NumericFromDecimal(c.RatingAvg()), c.RatingCount(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update club rating", err)
	}
	return nil
}

func scanClub(row rowScanner) (*club.Club, error) {
	var (
		p                    club.Params
		lat, long, rating    pgtype.Numeric
		openTime, closeTime  pgtype.Time
		workingDays          map[string]bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&p.ID, &p.ManagerID, &p.Name, &p.Description, &p.Address, &lat, &long,
		&openTime, &closeTime, &workingDays, &p.Logo, &rating, &p.RatingCount,
		&p.FlexibleReservation, &p.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if p.Latitude, err = pgconv.DecimalPtrFromNumeric(lat); err != nil {
		return nil, err
	}
	if p.Longitude, err = pgconv.DecimalPtrFromNumeric(long); err != nil {
		return nil, err
	}
	if p.RatingAvg, err = pgconv.DecimalFromNumeric(rating); err != nil {
		return nil, err
	}
	if p.OpenTime, err = pgconv.TimeOfDayFromPgtype(openTime); err != nil {
		return nil, err
	}
	if p.CloseTime, err = pgconv.TimeOfDayFromPgtype(closeTime); err != nil {
		return nil, err
	}
	if p.WorkingDays, err = club.ParseWorkingDays(workingDays); err != nil {
		return nil, err
	}
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return club.Reconstruct(p), nil
}
