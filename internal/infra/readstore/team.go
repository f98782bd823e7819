package readstore

import (
	"context"
	"strings"

	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const teamViewColumns = `t.id, t.captain_id, t.name, t.logo, t.time, t.address, t.challenge_mode, t.is_active,
	t.wins, t.losses, t.draws, t.canceled, t.goals_scored, t.goals_conceded, t.clean_sheet,
	t.failed_to_score, t.created_at`

const (
	listPlayerTeamsSQL = `SELECT ` + teamViewColumns + ` FROM teams t
JOIN team_members m ON m.team_id = t.id
WHERE m.player_id = $1 AND m.status = 1 AND t.is_active
ORDER BY t.created_at DESC, t.id`

	getActiveTeamSQL = `SELECT ` + teamViewColumns + ` FROM teams t WHERE t.id = $1 AND t.is_active`

	listTeamMembersSQL = `SELECT m.player_id, u.username, m.status, m.is_captain, m.joined_at, m.leave_at
FROM team_members m JOIN users u ON u.id = m.player_id
WHERE m.team_id = $1 AND m.status IN (1, 3)
ORDER BY m.is_captain DESC, m.joined_at, u.username`

	listPendingInvitationsSQL = `SELECT r.id, t.id, t.name, u.username, r.created_at
FROM team_requests r
JOIN teams t ON t.id = r.team_id
JOIN users u ON u.id = t.captain_id
WHERE r.player_id = $1 AND r.status = 1 AND t.is_active
ORDER BY r.created_at DESC, r.id DESC`

	searchUsersSQL = `SELECT id, username FROM users
WHERE is_active AND role = 'player' AND lower(username) LIKE '%' || $1 || '%' ESCAPE '\'
ORDER BY username
LIMIT $2`
)

type TeamReadStore struct {
	db db.DBTX
}

func NewTeamReadStore(db db.DBTX) *TeamReadStore {
	return &TeamReadStore{db: db}
}

func (r *TeamReadStore) ListForPlayer(ctx context.Context, playerID uuid.UUID) ([]*queries.TeamView, error) {
	rows, err := r.db.Query(ctx, listPlayerTeamsSQL, playerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list teams", err)
	}
	defer rows.Close()

	out := []*queries.TeamView{}
	for rows.Next() {
		t, err := scanTeamView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan team", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list teams", err)
	}
	return out, nil
}

func (r *TeamReadStore) FindActive(ctx context.Context, id uuid.UUID) (*queries.TeamView, error) {
	t, err := scanTeamView(r.db.QueryRow(ctx, getActiveTeamSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("team not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get team", err)
	}
	return t, nil
}

func (r *TeamReadStore) ListMembers(ctx context.Context, teamID uuid.UUID) ([]queries.MemberView, error) {
	rows, err := r.db.Query(ctx, listTeamMembersSQL, teamID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list team members", err)
	}
	defer rows.Close()

	out := []queries.MemberView{}
	for rows.Next() {
		var (
			m      queries.MemberView
			status int16
		)
		if err := rows.Scan(&m.PlayerID, &m.Username, &status, &m.IsCaptain, &m.JoinedAt, &m.LeaveAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan team member", err)
		}
		m.Status = team.MemberStatus(status).String()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list team members", err)
	}
	return out, nil
}

func (r *TeamReadStore) ListPendingInvitations(ctx context.Context, playerID uuid.UUID) ([]*queries.InvitationView, error) {
	rows, err := r.db.Query(ctx, listPendingInvitationsSQL, playerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invitations", err)
	}
	defer rows.Close()

	out := []*queries.InvitationView{}
	for rows.Next() {
		var v queries.InvitationView
		if err := rows.Scan(&v.ID, &v.TeamID, &v.TeamName, &v.Captain, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invitation", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list invitations", err)
	}
	return out, nil
}

func (r *TeamReadStore) SearchUsers(ctx context.Context, term string, limit int32) ([]*queries.UserSearchItem, error) {
	rows, err := r.db.Query(ctx, searchUsersSQL, escapeLike(strings.ToLower(term)), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search users", err)
	}
	defer rows.Close()

	out := []*queries.UserSearchItem{}
	for rows.Next() {
		var u queries.UserSearchItem
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to search users", err)
	}
	return out, nil
}

func scanTeamView(row rowScanner) (*queries.TeamView, error) {
	var t queries.TeamView
	err := row.Scan(&t.ID, &t.CaptainID, &t.Name, &t.LogoURL, &t.Time, &t.Address, &t.ChallengeMode, &t.IsActive,
		&t.Wins, &t.Losses, &t.Draws, &t.Canceled, &t.GoalsScored, &t.GoalsConceded, &t.CleanSheets,
		&t.FailedToScore, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
