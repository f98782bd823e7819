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
	insertMemberSQL = `INSERT INTO team_members (id, team_id, player_id, status, is_captain, joined_at, leave_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	// status 1 = active, 3 = inactive; both count against the roster.
	selectCountedMemberSQL = `SELECT id, team_id, player_id, status, is_captain, joined_at, leave_at
FROM team_members
WHERE team_id = $1 AND player_id = $2 AND status IN (1, 3)
ORDER BY joined_at DESC
LIMIT 1
FOR UPDATE`

	countCountedMembersSQL = `SELECT count(*) FROM team_members WHERE team_id = $1 AND status IN (1, 3)`

	updateMemberSQL = `UPDATE team_members SET status = $2, leave_at = $3 WHERE id = $1`
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (r *MemberRepository) Create(ctx context.Context, tx db.DBTX, m *team.Member) error {
	_, err := tx.Exec(ctx, insertMemberSQL,
		m.ID(), m.TeamID(), m.PlayerID(), int16(m.Status()), m.IsCaptain(), m.JoinedAt(), m.LeaveAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create team member", err)
	}
	return nil
}

func (r *MemberRepository) FindCounted(ctx context.Context, tx db.DBTX, teamID, playerID uuid.UUID) (*team.Member, error) {
	var (
		id, tID, pID uuid.UUID
		status       int16
		isCaptain    bool
		joinedAt     time.Time
		leaveAt      *time.Time
	)
	err := tx.QueryRow(ctx, selectCountedMemberSQL, teamID, playerID).Scan(
		&id, &tID, &pID, &status, &isCaptain, &joinedAt, &leaveAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get team member", err)
	}
	return team.ReconstructMember(id, tID, pID, team.MemberStatus(status), isCaptain, joinedAt, leaveAt), nil
}

func (r *MemberRepository) CountCounted(ctx context.Context, tx db.DBTX, teamID uuid.UUID) (int, error) {
	var n int
	if err := tx.QueryRow(ctx, countCountedMembersSQL, teamID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count team members", err)
	}
	return n, nil
}

func (r *MemberRepository) Update(ctx context.Context, tx db.DBTX, m *team.Member) error {
	if _, err := tx.Exec(ctx, updateMemberSQL, m.ID(), int16(m.Status()), m.LeaveAt()); err != nil {
		return infra.WrapRepoErr("failed to update team member", err)
	}
	return nil
}
