package repository

import (
	"context"

	"pitch-booking/internal/domain/pitch"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const pitchColumns = `id, club_id, name, image, type, size_high, size_width, is_active,
	price_first, price_second, time_interval, created_at, updated_at`

const (
	insertPitchSQL = `INSERT INTO pitches (` + pitchColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	selectPitchSQL          = `SELECT ` + pitchColumns + ` FROM pitches WHERE id = $1`
	selectPitchForUpdateSQL = selectPitchSQL + ` FOR UPDATE`

	selectPitchesByClubSQL = `SELECT ` + pitchColumns + ` FROM pitches
WHERE club_id = $1 AND (is_active OR NOT $2)
ORDER BY type, name`

	updatePitchSQL = `UPDATE pitches
SET name = $2, image = $3, type = $4, size_high = $5, size_width = $6, is_active = $7,
    price_first = $8, price_second = $9, time_interval = $10, updated_at = $11
WHERE id = $1`
)

type PitchRepository struct{}

func NewPitchRepository() *PitchRepository {
	return &PitchRepository{}
}

func (r *PitchRepository) Create(ctx context.Context, tx db.DBTX, p *pitch.Pitch) error {
	rates := p.Rates()
	_, err := tx.Exec(ctx, insertPitchSQL,
		p.ID(), p.ClubID(), p.Name(), p.Image(), p.Type(), p.SizeHigh(), p.SizeWidth(), p.IsActive(),
		pgconv.NumericFromDecimal(rates.PriceFirst), pgconv.NumericFromDecimal(rates.PriceSecond),
		pgconv.TimeOfDayToPgtype(rates.Cutoff), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pitch", err)
	}
	return nil
}

func (r *PitchRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pitch.Pitch, error) {
	p, err := scanPitch(tx.QueryRow(ctx, selectPitchSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pitch", err)
	}
	return p, nil
}

func (r *PitchRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pitch.Pitch, error) {
	p, err := scanPitch(tx.QueryRow(ctx, selectPitchForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pitch", err)
	}
	return p, nil
}

func (r *PitchRepository) Update(ctx context.Context, tx db.DBTX, p *pitch.Pitch) error {
	rates := p.Rates()
	_, err := tx.Exec(ctx, updatePitchSQL,
		p.ID(), p.Name(), p.Image(), p.Type(), p.SizeHigh(), p.SizeWidth(), p.IsActive(),
		pgconv.NumericFromDecimal(rates.PriceFirst), pgconv.NumericFromDecimal(rates.PriceSecond),
		pgconv.TimeOfDayToPgtype(rates.Cutoff), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pitch", err)
	}
	return nil
}

func (r *PitchRepository) ListByClub(ctx context.Context, tx db.DBTX, clubID uuid.UUID, activeOnly bool) ([]*pitch.Pitch, error) {
	rows, err := tx.Query(ctx, selectPitchesByClubSQL, clubID, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pitches", err)
	}
	defer rows.Close()

	var out []*pitch.Pitch
	for rows.Next() {
		p, err := scanPitch(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pitch", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list pitches", err)
	}
	return out, nil
}

func scanPitch(row rowScanner) (*pitch.Pitch, error) {
	var (
		p             pitch.Params
		first, second pgtype.Numeric
		cutoff        pgtype.Time
	)
	err := row.Scan(&p.ID, &p.ClubID, &p.Name, &p.Image, &p.Type, &p.SizeHigh, &p.SizeWidth, &p.IsActive,
		&first, &second, &cutoff, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Rates.PriceFirst, err = pgconv.DecimalFromNumeric(first); err != nil {
		return nil, err
	}
	if p.Rates.PriceSecond, err = pgconv.DecimalFromNumeric(second); err != nil {
		return nil, err
	}
	if p.Rates.Cutoff, err = pgconv.TimeOfDayFromPgtype(cutoff); err != nil {
		return nil, err
	}
	return pitch.Reconstruct(p), nil
}
