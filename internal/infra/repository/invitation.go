package repository

import (
	"context"
	"time"

	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertInvitationSQL = `INSERT INTO team_requests (id, team_id, player_id, status, created_at)
VALUES ($1, $2, $3, $4, $5)`

	selectInvitationForUpdateSQL = `SELECT id, team_id, player_id, status, created_at
FROM team_requests WHERE id = $1 FOR UPDATE`

	pendingInvitationExistsSQL = `SELECT EXISTS (
	SELECT 1 FROM team_requests WHERE team_id = $1 AND player_id = $2 AND status = 1
)`

	updateInvitationStatusSQL = `UPDATE team_requests SET status = $2 WHERE id = $1`
)

type InvitationRepository struct{}

func NewInvitationRepository() *InvitationRepository {
	return &InvitationRepository{}
}

func (r *InvitationRepository) Create(ctx context.Context, tx db.DBTX, i *team.Invitation) error {
	_, err := tx.Exec(ctx, insertInvitationSQL, i.ID(), i.TeamID(), i.PlayerID(), int16(i.Status()), i.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create invitation", err)
	}
	return nil
}

func (r *InvitationRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*team.Invitation, error) {
	var (
		iID, teamID, playerID uuid.UUID
		status                int16
		createdAt             time.Time
	)
	err := tx.QueryRow(ctx, selectInvitationForUpdateSQL, id).Scan(&iID, &teamID, &playerID, &status, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock invitation", err)
	}
	return team.ReconstructInvitation(iID, teamID, playerID, team.InvitationStatus(status), createdAt), nil
}

func (r *InvitationRepository) ExistsPending(ctx context.Context, tx db.DBTX, teamID, playerID uuid.UUID) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, pendingInvitationExistsSQL, teamID, playerID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending invitation", err)
	}
	return exists, nil
}

func (r *InvitationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, i *team.Invitation) error {
	if _, err := tx.Exec(ctx, updateInvitationStatusSQL, i.ID(), int16(i.Status())); err != nil {
		return infra.WrapRepoErr("failed to update invitation", err)
	}
	return nil
}
