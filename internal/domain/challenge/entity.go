package challenge

import (
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errs.NotFound("challenge not found")
	ErrSameTeam           = errs.Validation("a team cannot challenge itself")
	ErrChallengesDisabled = errs.Validation("the challenged team does not accept challenges")
	ErrOpponentInactive   = errs.NotFound("challenged team not found or is inactive")
	ErrNotPending         = errs.Validation("challenge is no longer pending")
	ErrNotCancelable      = errs.Validation("only pending or accepted challenges can be canceled")
	ErrNotAccepted        = errs.Validation("results can only be recorded for accepted challenges")
	ErrResultRecorded     = errs.Validation("result was already recorded")
	ErrNegativeScore      = errs.Validation("scores cannot be negative")
	ErrNotParticipant     = errs.Permission("only a captain of either team can do this")
)

type Status int16

const (
	StatusPending  Status = 1
	StatusAccepted Status = 2
	StatusRejected Status = 3
	StatusCanceled Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusAccepted:
		return "ACCEPTED"
	case StatusRejected:
		return "REJECTED"
	case StatusCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

type Challenge struct {
	id                   uuid.UUID
	teamID               uuid.UUID
	challengedTeamID     uuid.UUID
	pitchID              uuid.UUID
	createdBy            uuid.UUID
	slot                 booking.Slot
	status               Status
	resultTeam           *int
	resultChallengedTeam *int
	createdAt            time.Time
	updatedAt            time.Time
}

// New lets the captain of an active team challenge another active team that
// has challenge mode switched on.
func New(challenger, challenged *team.Team, userID, pitchID uuid.UUID, slot booking.Slot, now time.Time) (*Challenge, error) {
	if err := challenger.RequireCaptain(userID); err != nil {
		return nil, err
	}
	if challenger.ID() == challenged.ID() {
		return nil, ErrSameTeam
	}
	if !challenged.IsActive() {
		return nil, ErrOpponentInactive
	}
	if !challenged.ChallengeMode() {
		return nil, ErrChallengesDisabled
	}
	return &Challenge{
		id:               uuid.New(),
		teamID:           challenger.ID(),
		challengedTeamID: challenged.ID(),
		pitchID:          pitchID,
		createdBy:        userID,
		slot:             slot,
		status:           StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type Params struct {
	ID                   uuid.UUID
	TeamID               uuid.UUID
	ChallengedTeamID     uuid.UUID
	PitchID              uuid.UUID
	CreatedBy            uuid.UUID
	Slot                 booking.Slot
	Status               Status
	ResultTeam           *int
	ResultChallengedTeam *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func Reconstruct(p Params) *Challenge {
	return &Challenge{
		id:                   p.ID,
		teamID:               p.TeamID,
		challengedTeamID:     p.ChallengedTeamID,
		pitchID:              p.PitchID,
		createdBy:            p.CreatedBy,
		slot:                 p.Slot,
		status:               p.Status,
		resultTeam:           p.ResultTeam,
		resultChallengedTeam: p.ResultChallengedTeam,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}
}

func (c *Challenge) ID() uuid.UUID               { return c.id }
func (c *Challenge) TeamID() uuid.UUID           { return c.teamID }
func (c *Challenge) ChallengedTeamID() uuid.UUID { return c.challengedTeamID }
func (c *Challenge) PitchID() uuid.UUID          { return c.pitchID }
func (c *Challenge) CreatedBy() uuid.UUID        { return c.createdBy }
func (c *Challenge) Slot() booking.Slot          { return c.slot }
func (c *Challenge) Status() Status              { return c.status }
func (c *Challenge) ResultTeam() *int            { return c.resultTeam }
func (c *Challenge) ResultChallengedTeam() *int  { return c.resultChallengedTeam }
func (c *Challenge) CreatedAt() time.Time        { return c.createdAt }
func (c *Challenge) UpdatedAt() time.Time        { return c.updatedAt }

// Respond is the challenged captain accepting or rejecting.
func (c *Challenge) Respond(challenged *team.Team, userID uuid.UUID, accept bool, now time.Time) error {
	if challenged.ID() != c.challengedTeamID {
		return ErrNotFound
	}
	if err := challenged.RequireCaptain(userID); err != nil {
		return err
	}
	if c.status != StatusPending {
		return ErrNotPending
	}
	if accept {
		c.status = StatusAccepted
	} else {
		c.status = StatusRejected
	}
	c.updatedAt = now
	return nil
}

// Cancel is only open to the challenging captain. Canceling an accepted
// challenge counts against both teams.
func (c *Challenge) Cancel(challenger, challenged *team.Team, userID uuid.UUID, now time.Time) error {
	if challenger.ID() != c.teamID || challenged.ID() != c.challengedTeamID {
		return ErrNotFound
	}
	if err := challenger.RequireCaptain(userID); err != nil {
		return err
	}
	switch c.status {
	case StatusPending:
	case StatusAccepted:
		challenger.RecordCanceled(now)
		challenged.RecordCanceled(now)
	case StatusRejected, StatusCanceled:
		return ErrNotCancelable
	default:
		return ErrNotCancelable
	}
	c.status = StatusCanceled
	c.updatedAt = now
	return nil
}

// RecordResult stores the final score once and updates both teams' stats.
func (c *Challenge) RecordResult(challenger, challenged *team.Team, userID uuid.UUID, teamGoals, challengedGoals int, now time.Time) error {
	if challenger.ID() != c.teamID || challenged.ID() != c.challengedTeamID {
		return ErrNotFound
	}
	if !challenger.IsCaptain(userID) && !challenged.IsCaptain(userID) {
		return ErrNotParticipant
	}
	if c.status != StatusAccepted {
		return ErrNotAccepted
	}
	if c.resultTeam != nil || c.resultChallengedTeam != nil {
		return ErrResultRecorded
	}
	if teamGoals < 0 || challengedGoals < 0 {
		return ErrNegativeScore
	}
	c.resultTeam = &teamGoals
	c.resultChallengedTeam = &challengedGoals
	c.updatedAt = now
	challenger.RecordMatch(teamGoals, challengedGoals, now)
	challenged.RecordMatch(challengedGoals, teamGoals, now)
	return nil
}
