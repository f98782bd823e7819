package repository

import (
	"context"

	"pitch-booking/internal/domain/challenge"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"

	"github.com/google/uuid"
)

const challengeColumns = `id, team_id, challenged_team_id, pitch_id, created_by, date, start_time, end_time,
	status, result_team, result_challenged_team, created_at, updated_at`

const (
	insertChallengeSQL = `INSERT INTO challenges (` + challengeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	selectChallengeForUpdateSQL = `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1 FOR UPDATE`

	updateChallengeSQL = `UPDATE challenges
SET status = $2, result_team = $3, result_challenged_team = $4, updated_at = $5
WHERE id = $1`
)

type ChallengeRepository struct{}

func NewChallengeRepository() *ChallengeRepository {
	return &ChallengeRepository{}
}

func (r *ChallengeRepository) Create(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error {
	slot := slotArgs(c.Slot())
	_, err := tx.Exec(ctx, insertChallengeSQL,
		c.ID(), c.TeamID(), c.ChallengedTeamID(), c.PitchID(), c.CreatedBy(),
		slot.Date, slot.Start, slot.End,
		int16(c.Status()), c.ResultTeam(), c.ResultChallengedTeam(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create challenge", err)
	}
	return nil
}

func (r *ChallengeRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*challenge.Challenge, error) {
	var (
		p      challenge.Params
		slot   slotColumns
		status int16
	)
	err := tx.QueryRow(ctx, selectChallengeForUpdateSQL, id).Scan(
		&p.ID, &p.TeamID, &p.ChallengedTeamID, &p.PitchID, &p.CreatedBy,
		&slot.Date, &slot.Start, &slot.End,
		&status, &p.ResultTeam, &p.ResultChallengedTeam, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock challenge", err)
	}
	if p.Slot, err = slot.slot(); err != nil {
		return nil, err
	}
	p.Status = challenge.Status(status)
	return challenge.Reconstruct(p), nil
}

func (r *ChallengeRepository) Update(ctx context.Context, tx db.DBTX, c *challenge.Challenge) error {
	_, err := tx.Exec(ctx, updateChallengeSQL,
		c.ID(), int16(c.Status()), c.ResultTeam(), c.ResultChallengedTeam(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update challenge", err)
	}
	return nil
}
