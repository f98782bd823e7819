package team

import (
	"time"

	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound      = errs.NotFound("player is not an active member of this team")
	ErrAlreadyMember       = errs.Validation("player is already a member of this team")
	ErrCaptainRemovesSelf  = errs.Validation("captain cannot remove themselves from the team")
	ErrCaptainCannotLeave  = errs.Validation("captain cannot leave the team")
	ErrInvalidMemberStatus = errs.Validation("invalid member status")
)

type MemberStatus int16

const (
	MemberActive   MemberStatus = 1
	MemberOut      MemberStatus = 2
	MemberInactive MemberStatus = 3
)

func (s MemberStatus) String() string {
	switch s {
	case MemberActive:
		return "ACTIVE"
	case MemberOut:
		return "OUT"
	case MemberInactive:
		return "INACTIVE"
	default:
		return "UNKNOWN"
	}
}

// Counts reports whether the member takes a place in the team.
func (s MemberStatus) Counts() bool {
	return s == MemberActive || s == MemberInactive
}

type Member struct {
	id        uuid.UUID
	teamID    uuid.UUID
	playerID  uuid.UUID
	status    MemberStatus
	isCaptain bool
	joinedAt  time.Time
	leaveAt   *time.Time
}

func newMember(teamID, playerID uuid.UUID, captain bool, now time.Time) *Member {
	return &Member{
		id:        uuid.New(),
		teamID:    teamID,
		playerID:  playerID,
		status:    MemberActive,
		isCaptain: captain,
		joinedAt:  now,
	}
}

func ReconstructMember(id, teamID, playerID uuid.UUID, status MemberStatus, isCaptain bool, joinedAt time.Time, leaveAt *time.Time) *Member {
	return &Member{
		id:        id,
		teamID:    teamID,
		playerID:  playerID,
		status:    status,
		isCaptain: isCaptain,
		joinedAt:  joinedAt,
		leaveAt:   leaveAt,
	}
}

func (m *Member) ID() uuid.UUID        { return m.id }
func (m *Member) TeamID() uuid.UUID    { return m.teamID }
func (m *Member) PlayerID() uuid.UUID  { return m.playerID }
func (m *Member) Status() MemberStatus { return m.status }
func (m *Member) IsCaptain() bool      { return m.isCaptain }
func (m *Member) JoinedAt() time.Time  { return m.joinedAt }
func (m *Member) LeaveAt() *time.Time  { return m.leaveAt }

// markOut is shared by removal and leaving. Captains and members that already
// left are treated as absent.
func (m *Member) markOut(now time.Time) error {
	if m.isCaptain || !m.status.Counts() {
		return ErrMemberNotFound
	}
	m.status = MemberOut
	m.leaveAt = &now
	return nil
}

// RemoveMember is the captain taking a player out of the team.
func RemoveMember(t *Team, m *Member, userID uuid.UUID, now time.Time) error {
	if err := t.RequireCaptain(userID); err != nil {
		return err
	}
	if m.playerID == userID {
		return ErrCaptainRemovesSelf
	}
	if m.teamID != t.id {
		return ErrMemberNotFound
	}
	return m.markOut(now)
}

// Leave is a player taking themselves out of the team.
func Leave(t *Team, m *Member, userID uuid.UUID, now time.Time) error {
	if !t.isActive {
		return ErrNotFound
	}
	if t.IsCaptain(userID) {
		return ErrCaptainCannotLeave
	}
	if m.teamID != t.id || m.playerID != userID {
		return ErrMemberNotFound
	}
	return m.markOut(now)
}
