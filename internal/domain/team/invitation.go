package team

import (
	"time"

	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvitationNotFound = errs.NotFound("invitation not found")
	ErrNotInvitee         = errs.Permission("this invitation is not for you")
	ErrInvitationAnswered = errs.Validation("this invitation has already been processed")
	ErrInvitationPending  = errs.Validation("a pending invitation already exists for this player")
	ErrTeamNoLongerActive = errs.Validation("the team is no longer active")
)

type InvitationStatus int16

const (
	InvitationPending  InvitationStatus = 1
	InvitationAccepted InvitationStatus = 2
	InvitationRejected InvitationStatus = 3
)

func (s InvitationStatus) String() string {
	switch s {
	case InvitationPending:
		return "PENDING"
	case InvitationAccepted:
		return "ACCEPTED"
	case InvitationRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

type Invitation struct {
	id        uuid.UUID
	teamID    uuid.UUID
	playerID  uuid.UUID
	status    InvitationStatus
	createdAt time.Time
}

// Invite checks the captain side of an invitation. Membership, pending
// invitations and the member count are looked up by the caller.
func Invite(t *Team, captainID, playerID uuid.UUID, alreadyMember, pending bool, members int, limits Limits, now time.Time) (*Invitation, error) {
	if err := t.RequireCaptain(captainID); err != nil {
		return nil, err
	}
	if alreadyMember {
		return nil, ErrAlreadyMember
	}
	if pending {
		return nil, ErrInvitationPending
	}
	if err := limits.CheckMemberCount(members); err != nil {
		return nil, err
	}
	return &Invitation{
		id:        uuid.New(),
		teamID:    t.id,
		playerID:  playerID,
		status:    InvitationPending,
		createdAt: now,
	}, nil
}

func ReconstructInvitation(id, teamID, playerID uuid.UUID, status InvitationStatus, createdAt time.Time) *Invitation {
	return &Invitation{id: id, teamID: teamID, playerID: playerID, status: status, createdAt: createdAt}
}

func (i *Invitation) ID() uuid.UUID            { return i.id }
func (i *Invitation) TeamID() uuid.UUID        { return i.teamID }
func (i *Invitation) PlayerID() uuid.UUID      { return i.playerID }
func (i *Invitation) Status() InvitationStatus { return i.status }
func (i *Invitation) CreatedAt() time.Time     { return i.createdAt }

// CheckRespond validates that playerID may answer the invitation to t.
func (i *Invitation) CheckRespond(t *Team, playerID uuid.UUID) error {
	if i.playerID != playerID {
		return ErrNotInvitee
	}
	if i.status != InvitationPending {
		return ErrInvitationAnswered
	}
	if !t.isActive {
		return ErrTeamNoLongerActive
	}
	return nil
}

// Accept re-checks membership and both limits, then returns the new member.
func (i *Invitation) Accept(t *Team, playerID uuid.UUID, alreadyMember bool, members, playerTeams int, limits Limits, now time.Time) (*Member, error) {
	if err := i.CheckRespond(t, playerID); err != nil {
		return nil, err
	}
	if alreadyMember {
		return nil, ErrAlreadyMember
	}
	if err := limits.CheckMemberCount(members); err != nil {
		return nil, err
	}
	if err := limits.CheckTeamCount(playerTeams); err != nil {
		return nil, err
	}
	i.status = InvitationAccepted
	return newMember(t.id, playerID, false, now), nil
}

func (i *Invitation) Reject(t *Team, playerID uuid.UUID) error {
	if err := i.CheckRespond(t, playerID); err != nil {
		return err
	}
	i.status = InvitationRejected
	return nil
}
