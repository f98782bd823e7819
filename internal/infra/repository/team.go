package repository

import (
	"context"

	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"

	"github.com/google/uuid"
)

const teamColumns = `id, captain_id, name, logo, time, address, challenge_mode, is_active,
	wins, losses, draws, canceled, goals_scored, goals_conceded, clean_sheet, failed_to_score,
	created_at, updated_at`

const (
	insertTeamSQL = `INSERT INTO teams (` + teamColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	selectTeamForUpdateSQL = `SELECT ` + teamColumns + ` FROM teams WHERE id = $1 FOR UPDATE`

	updateTeamSQL = `UPDATE teams
SET name = $2, logo = $3, time = $4, address = $5, challenge_mode = $6, is_active = $7,
    wins = $8, losses = $9, draws = $10, canceled = $11, goals_scored = $12,
    goals_conceded = $13, clean_sheet = $14, failed_to_score = $15, updated_at = $16
WHERE id = $1`

	countActiveMembershipsSQL = `SELECT count(*) FROM team_members m
JOIN teams t ON t.id = m.team_id
WHERE m.player_id = $1 AND m.status = 1 AND t.is_active`
)

type TeamRepository struct{}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

func (r *TeamRepository) Create(ctx context.Context, tx db.DBTX, t *team.Team) error {
	s := t.Stats()
	_, err := tx.Exec(ctx, insertTeamSQL,
		t.ID(), t.CaptainID(), t.Name(), t.Logo(), t.Time(), t.Address(), t.ChallengeMode(), t.IsActive(),
		s.Wins, s.Losses, s.Draws, s.Canceled, s.GoalsScored, s.GoalsConceded, s.CleanSheets, s.FailedToScore,
		t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create team", err)
	}
	return nil
}

func (r *TeamRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*team.Team, error) {
	var p team.Params
	s := &p.Stats
	err := tx.QueryRow(ctx, selectTeamForUpdateSQL, id).Scan(
		&p.ID, &p.CaptainID, &p.Name, &p.Logo, &p.Time, &p.Address, &p.ChallengeMode, &p.IsActive,
		&s.Wins, &s.Losses, &s.Draws, &s.Canceled, &s.GoalsScored, &s.GoalsConceded, &s.CleanSheets, &s.FailedToScore,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock team", err)
	}
	return team.Reconstruct(p), nil
}

func (r *TeamRepository) Update(ctx context.Context, tx db.DBTX, t *team.Team) error {
	s := t.Stats()
	_, err := tx.Exec(ctx, updateTeamSQL,
		t.ID(), t.Name(), t.Logo(), t.Time(), t.Address(), t.ChallengeMode(), t.IsActive(),
		s.Wins, s.Losses, s.Draws, s.Canceled, s.GoalsScored, s.GoalsConceded, s.CleanSheets, s.FailedToScore,
		t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update team", err)
	}
	return nil
}

func (r *TeamRepository) CountActiveMemberships(ctx context.Context, tx db.DBTX, playerID uuid.UUID) (int, error) {
	var n int
	if err := tx.QueryRow(ctx, countActiveMembershipsSQL, playerID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count memberships", err)
	}
	return n, nil
}
