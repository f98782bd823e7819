package team

import (
	"strings"
	"time"

	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 100

var (
	ErrNotFound        = errs.NotFound("team not found or is inactive")
	ErrNotCaptain      = errs.Permission("only the team captain can do this")
	ErrEmptyName       = errs.Validation("team name is required")
	ErrNameTooLong     = errs.Validation("team name exceeds maximum length")
	ErrAlreadyInactive = errs.Validation("team is already inactive")
	ErrTooManyTeams    = errs.Validation("you are already in the maximum number of active teams")
	ErrTeamFull        = errs.Validation("team has reached the maximum number of members")
)

// Limits caps how many teams a player can be in and how big a team can get.
type Limits struct {
	MaxTeams   int
	MaxMembers int
}

func (l Limits) CheckTeamCount(activeMemberships int) error {
	if activeMemberships >= l.MaxTeams {
		return errs.Wrapf(ErrTooManyTeams, "limit is %d", l.MaxTeams)
	}
	return nil
}

func (l Limits) CheckMemberCount(members int) error {
	if members >= l.MaxMembers {
		return errs.Wrapf(ErrTeamFull, "limit is %d, current members: %d", l.MaxMembers, members)
	}
	return nil
}

type Stats struct {
	Wins          int
	Losses        int
	Draws         int
	Canceled      int
	GoalsScored   int
	GoalsConceded int
	CleanSheets   int
	FailedToScore int
}

func (s Stats) Matches() int { return s.Wins + s.Losses + s.Draws }

// WinRate is a percentage of matches won, 0 when no match was played.
func (s Stats) WinRate() float64 {
	if s.Matches() == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Matches()) * 100
}

// Record adds one played match seen from this team's side.
func (s *Stats) Record(scored, conceded int) {
	switch {
	case scored > conceded:
		s.Wins++
	case scored < conceded:
		s.Losses++
	default:
		s.Draws++
	}
	s.GoalsScored += scored
	s.GoalsConceded += conceded
	if conceded == 0 {
		s.CleanSheets++
	}
	if scored == 0 {
		s.FailedToScore++
	}
}

type Team struct {
	id            uuid.UUID
	captainID     uuid.UUID
	name          string
	logo          string
	time          string
	address       string
	challengeMode bool
	isActive      bool
	stats         Stats
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	ID            uuid.UUID
	CaptainID     uuid.UUID
	Name          string
	Logo          string
	Time          string
	Address       string
	ChallengeMode bool
	IsActive      bool
	Stats         Stats
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New creates an active team and the captain's membership.
func New(captainID uuid.UUID, name, logo, timePref, address string, now time.Time) (*Team, *Member, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, nil, err
	}
	t := &Team{
		id:        uuid.New(),
		captainID: captainID,
		name:      n,
		logo:      logo,
		time:      strings.TrimSpace(timePref),
		address:   strings.TrimSpace(address),
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
	return t, newMember(t.id, captainID, true, now), nil
}

func Reconstruct(p Params) *Team {
	return &Team{
		id:            p.ID,
		captainID:     p.CaptainID,
		name:          p.Name,
		logo:          p.Logo,
		time:          p.Time,
		address:       p.Address,
		challengeMode: p.ChallengeMode,
		isActive:      p.IsActive,
		stats:         p.Stats,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (t *Team) ID() uuid.UUID        { return t.id }
func (t *Team) CaptainID() uuid.UUID { return t.captainID }
func (t *Team) Name() string         { return t.name }
func (t *Team) Logo() string         { return t.logo }
func (t *Team) Time() string         { return t.time }
func (t *Team) Address() string      { return t.address }
func (t *Team) ChallengeMode() bool  { return t.challengeMode }
func (t *Team) IsActive() bool       { return t.isActive }
func (t *Team) Stats() Stats         { return t.stats }
func (t *Team) CreatedAt() time.Time { return t.createdAt }
func (t *Team) UpdatedAt() time.Time { return t.updatedAt }

func (t *Team) IsCaptain(userID uuid.UUID) bool { return t.captainID == userID }

// RequireCaptain fails with not found for an inactive team and with a
// permission error for anyone but the captain.
func (t *Team) RequireCaptain(userID uuid.UUID) error {
	if !t.isActive {
		return ErrNotFound
	}
	if !t.IsCaptain(userID) {
		return ErrNotCaptain
	}
	return nil
}

type Update struct {
	Name          *string
	Logo          *string
	Time          *string
	Address       *string
	ChallengeMode *bool
}

func (t *Team) Apply(userID uuid.UUID, u Update, now time.Time) error {
	if err := t.RequireCaptain(userID); err != nil {
		return err
	}
	next := *t
	if u.Name != nil {
		n, err := normalizeName(*u.Name)
		if err != nil {
			return err
		}
		next.name = n
	}
	if u.Logo != nil {
		next.logo = *u.Logo
	}
	if u.Time != nil {
		next.time = strings.TrimSpace(*u.Time)
	}
	if u.Address != nil {
		next.address = strings.TrimSpace(*u.Address)
	}
	if u.ChallengeMode != nil {
		next.challengeMode = *u.ChallengeMode
	}
	next.updatedAt = now
	*t = next
	return nil
}

func (t *Team) Deactivate(userID uuid.UUID, now time.Time) error {
	if !t.IsCaptain(userID) {
		return ErrNotCaptain
	}
	if !t.isActive {
		return ErrAlreadyInactive
	}
	t.isActive = false
	t.updatedAt = now
	return nil
}

func (t *Team) RecordMatch(scored, conceded int, now time.Time) {
	t.stats.Record(scored, conceded)
	t.updatedAt = now
}

func (t *Team) RecordCanceled(now time.Time) {
	t.stats.Canceled++
	t.updatedAt = now
}

func normalizeName(s string) (string, error) {
	n := strings.TrimSpace(s)
	if n == "" {
		return "", ErrEmptyName
	}
	if len(n) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return n, nil
}
