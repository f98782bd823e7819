//go:build unit

package team_test

import (
	"testing"
	"time"

	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	limits = team.Limits{MaxTeams: 5, MaxMembers: 7}
)

func newTeam(t *testing.T) (*team.Team, uuid.UUID) {
	t.Helper()
	captain := uuid.New()
	tm, member, err := team.New(captain, "  Falcons ", "", " evenings ", "", now)
	require.NoError(t, err)
	require.True(t, member.IsCaptain())
	return tm, captain
}

func TestNew(t *testing.T) {
	t.Run("success: captain becomes a member", func(t *testing.T) {
		captain := uuid.New()
		tm, m, err := team.New(captain, "  Falcons ", "", " evenings ", "", now)
		require.NoError(t, err)
		assert.Equal(t, "Falcons", tm.Name())
		assert.Equal(t, "evenings", tm.Time())
		assert.True(t, tm.IsActive())
		assert.Equal(t, tm.ID(), m.TeamID())
		assert.Equal(t, captain, m.PlayerID())
		assert.Equal(t, team.MemberActive, m.Status())
	})

	t.Run("error: blank name", func(t *testing.T) {
		_, _, err := team.New(uuid.New(), "  ", "", "", "", now)
		require.ErrorIs(t, err, team.ErrEmptyName)
	})
}

func TestLimits(t *testing.T) {
	require.NoError(t, limits.CheckTeamCount(4))
	require.ErrorIs(t, limits.CheckTeamCount(5), team.ErrTooManyTeams)
	require.NoError(t, limits.CheckMemberCount(6))
	err := limits.CheckMemberCount(7)
	require.ErrorIs(t, err, team.ErrTeamFull)
	assert.True(t, errs.IsValidation(err))
}

func TestApplyAndDeactivate(t *testing.T) {
	t.Run("error: not captain", func(t *testing.T) {
		tm, _ := newTeam(t)
		err := tm.Apply(uuid.New(), team.Update{Name: ptr.Of("X")}, now)
		require.ErrorIs(t, err, team.ErrNotCaptain)
		assert.True(t, errs.IsPermission(err))
	})

	t.Run("success: captain toggles challenge mode", func(t *testing.T) {
		tm, captain := newTeam(t)
		require.NoError(t, tm.Apply(captain, team.Update{ChallengeMode: ptr.Of(true)}, now))
		assert.True(t, tm.ChallengeMode())
	})

	t.Run("error: empty name on update", func(t *testing.T) {
		tm, captain := newTeam(t)
		require.ErrorIs(t, tm.Apply(captain, team.Update{Name: ptr.Of(" ")}, now), team.ErrEmptyName)
	})

	t.Run("error: deactivate twice", func(t *testing.T) {
		tm, captain := newTeam(t)
		require.NoError(t, tm.Deactivate(captain, now))
		require.ErrorIs(t, tm.Deactivate(captain, now), team.ErrAlreadyInactive)
		require.ErrorIs(t, tm.Apply(captain, team.Update{}, now), team.ErrNotFound)
	})
}

func TestInvitation(t *testing.T) {
	t.Run("success: invite and accept", func(t *testing.T) {
		tm, captain := newTeam(t)
		player := uuid.New()
		inv, err := team.Invite(tm, captain, player, false, false, 1, limits, now)
		require.NoError(t, err)
		assert.Equal(t, team.InvitationPending, inv.Status())

		m, err := inv.Accept(tm, player, false, 1, 0, limits, now)
		require.NoError(t, err)
		assert.Equal(t, team.InvitationAccepted, inv.Status())
		assert.False(t, m.IsCaptain())
		assert.Equal(t, player, m.PlayerID())
	})

	t.Run("invite errors", func(t *testing.T) {
		tm, captain := newTeam(t)
		tests := []struct {
			name    string
			user    uuid.UUID
			member  bool
			pending bool
			count   int
			errIs   error
		}{
			{name: "error: not captain", user: uuid.New(), errIs: team.ErrNotCaptain},
			{name: "error: already member", user: captain, member: true, errIs: team.ErrAlreadyMember},
			{name: "error: already invited", user: captain, pending: true, errIs: team.ErrInvitationPending},
			{name: "error: team full", user: captain, count: 7, errIs: team.ErrTeamFull},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := team.Invite(tm, tt.user, uuid.New(), tt.member, tt.pending, tt.count, limits, now)
				require.ErrorIs(t, err, tt.errIs)
			})
		}
	})

	t.Run("respond errors", func(t *testing.T) {
		tm, captain := newTeam(t)
		player := uuid.New()
		inv, err := team.Invite(tm, captain, player, false, false, 1, limits, now)
		require.NoError(t, err)

		_, err = inv.Accept(tm, uuid.New(), false, 1, 0, limits, now)
		require.ErrorIs(t, err, team.ErrNotInvitee)

		_, err = inv.Accept(tm, player, false, 1, 5, limits, now)
		require.ErrorIs(t, err, team.ErrTooManyTeams)
		assert.Equal(t, team.InvitationPending, inv.Status())

		require.NoError(t, inv.Reject(tm, player))
		require.ErrorIs(t, inv.Reject(tm, player), team.ErrInvitationAnswered)
	})

	t.Run("error: team deactivated before answer", func(t *testing.T) {
		tm, captain := newTeam(t)
		player := uuid.New()
		inv, err := team.Invite(tm, captain, player, false, false, 1, limits, now)
		require.NoError(t, err)
		require.NoError(t, tm.Deactivate(captain, now))
		require.ErrorIs(t, inv.Reject(tm, player), team.ErrTeamNoLongerActive)
	})
}

func TestRemoveAndLeave(t *testing.T) {
	setup := func(t *testing.T) (*team.Team, uuid.UUID, *team.Member) {
		tm, captain := newTeam(t)
		player := uuid.New()
		inv, err := team.Invite(tm, captain, player, false, false, 1, limits, now)
		require.NoError(t, err)
		m, err := inv.Accept(tm, player, false, 1, 0, limits, now)
		require.NoError(t, err)
		return tm, captain, m
	}

	t.Run("success: captain removes a player", func(t *testing.T) {
		tm, captain, m := setup(t)
		require.NoError(t, team.RemoveMember(tm, m, captain, now))
		assert.Equal(t, team.MemberOut, m.Status())
		require.NotNil(t, m.LeaveAt())
		require.ErrorIs(t, team.RemoveMember(tm, m, captain, now), team.ErrMemberNotFound)
	})

	t.Run("error: captain removes self", func(t *testing.T) {
		tm, captain, _ := setup(t)
		self := team.ReconstructMember(uuid.New(), tm.ID(), captain, team.MemberActive, true, now, nil)
		require.ErrorIs(t, team.RemoveMember(tm, self, captain, now), team.ErrCaptainRemovesSelf)
	})

	t.Run("error: non captain removes", func(t *testing.T) {
		tm, _, m := setup(t)
		require.ErrorIs(t, team.RemoveMember(tm, m, uuid.New(), now), team.ErrNotCaptain)
	})

	t.Run("success: player leaves", func(t *testing.T) {
		tm, _, m := setup(t)
		require.NoError(t, team.Leave(tm, m, m.PlayerID(), now))
		assert.Equal(t, team.MemberOut, m.Status())
	})

	t.Run("error: captain leaves", func(t *testing.T) {
		tm, captain, _ := setup(t)
		self := team.ReconstructMember(uuid.New(), tm.ID(), captain, team.MemberActive, true, now, nil)
		require.ErrorIs(t, team.Leave(tm, self, captain, now), team.ErrCaptainCannotLeave)
	})
}

func TestStats(t *testing.T) {
	var s team.Stats
	s.Record(3, 0)
	s.Record(0, 2)
	s.Record(1, 1)
	assert.Equal(t, team.Stats{Wins: 1, Losses: 1, Draws: 1, GoalsScored: 4, GoalsConceded: 3, CleanSheets: 1, FailedToScore: 1}, s)
	assert.InDelta(t, 33.33, s.WinRate(), 0.01)
}
