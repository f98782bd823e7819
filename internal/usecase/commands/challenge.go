package commands

import (
	"context"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/challenge"
	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateChallengeRequest struct {
	TeamID           uuid.UUID
	ChallengedTeamID uuid.UUID
	PitchID          uuid.UUID
	Date             time.Time
	StartTime        daytime.TimeOfDay
	EndTime          daytime.TimeOfDay
}

type ChallengeCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateChallengeRequest) (uuid.UUID, error)
	Respond(ctx context.Context, actor user.Actor, challengeID uuid.UUID, accept bool) error
	Cancel(ctx context.Context, actor user.Actor, challengeID uuid.UUID) error
	RecordResult(ctx context.Context, actor user.Actor, challengeID uuid.UUID, teamGoals, challengedGoals int) error
}

type challengeUseCase struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewChallengeUseCase(uow shared.UnitOfWork, clk clock.Clock) ChallengeCommands {
	return &challengeUseCase{uow: uow, clock: clk}
}

func (uc *challengeUseCase) Create(ctx context.Context, actor user.Actor, req CreateChallengeRequest) (uuid.UUID, error) {
	slot, err := booking.NewSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		home, away, err := lockTeams(ctx, tx, req.TeamID, req.ChallengedTeamID)
		if err != nil {
			return err
		}
		p, err := tx.Pitches().FindByID(ctx, tx.DB(), req.PitchID)
		if err != nil {
			return notFoundAs(err, ErrPitchNotFound)
		}
		if !p.IsActive() {
			return ErrPitchNotFound
		}
		c, err := challenge.New(home, away, actor.UserID, p.ID(), slot, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Challenges().Create(ctx, tx.DB(), c); err != nil {
			return err
		}
		id = c.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *challengeUseCase) Respond(ctx context.Context, actor user.Actor, challengeID uuid.UUID, accept bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Challenges().FindForUpdate(ctx, tx.DB(), challengeID)
		if err != nil {
			return notFoundAs(err, challenge.ErrNotFound)
		}
		away, err := lockTeam(ctx, tx, c.ChallengedTeamID())
		if err != nil {
			return err
		}
		if err := c.Respond(away, actor.UserID, accept, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Challenges().Update(ctx, tx.DB(), c)
	})
}

func (uc *challengeUseCase) Cancel(ctx context.Context, actor user.Actor, challengeID uuid.UUID) error {
	return uc.withBothTeams(ctx, challengeID, func(c *challenge.Challenge, home, away *team.Team) error {
		return c.Cancel(home, away, actor.UserID, uc.clock.Now())
	})
}

func (uc *challengeUseCase) RecordResult(ctx context.Context, actor user.Actor, challengeID uuid.UUID, teamGoals, challengedGoals int) error {
	return uc.withBothTeams(ctx, challengeID, func(c *challenge.Challenge, home, away *team.Team) error {
		return c.RecordResult(home, away, actor.UserID, teamGoals, challengedGoals, uc.clock.Now())
	})
}

// withBothTeams locks the challenge and both teams, applies fn and saves all
// three, since results and cancellations update team stats.
func (uc *challengeUseCase) withBothTeams(ctx context.Context, challengeID uuid.UUID, fn func(c *challenge.Challenge, home, away *team.Team) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Challenges().FindForUpdate(ctx, tx.DB(), challengeID)
		if err != nil {
			return notFoundAs(err, challenge.ErrNotFound)
		}
		home, away, err := lockTeams(ctx, tx, c.TeamID(), c.ChallengedTeamID())
		if err != nil {
			return err
		}
		if err := fn(c, home, away); err != nil {
			return err
		}
		if err := tx.Challenges().Update(ctx, tx.DB(), c); err != nil {
			return err
		}
		if err := tx.Teams().Update(ctx, tx.DB(), home); err != nil {
			return err
		}
		return tx.Teams().Update(ctx, tx.DB(), away)
	})
}

// lockTeams locks two teams in id order so concurrent callers cannot deadlock.
func lockTeams(ctx context.Context, tx shared.Tx, a, b uuid.UUID) (*team.Team, *team.Team, error) {
	if a == b {
		t, err := lockTeam(ctx, tx, a)
		return t, t, err
	}
	first, second := a, b
	if second.String() < first.String() {
		first, second = second, first
	}
	t1, err := lockTeam(ctx, tx, first)
	if err != nil {
		return nil, nil, err
	}
	t2, err := lockTeam(ctx, tx, second)
	if err != nil {
		return nil, nil, err
	}
	if first == a {
		return t1, t2, nil
	}
	return t2, t1, nil
}
