package commands

import (
	"context"

	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name    string
	Logo    string
	Time    string
	Address string
}

type TeamCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateTeamRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor user.Actor, teamID uuid.UUID, u team.Update) error
	Deactivate(ctx context.Context, actor user.Actor, teamID uuid.UUID) error
	RemoveMember(ctx context.Context, actor user.Actor, teamID, playerID uuid.UUID) error
	Leave(ctx context.Context, actor user.Actor, teamID uuid.UUID) error
}

type teamUseCase struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewTeamUseCase(uow shared.UnitOfWork, clk clock.Clock, settings Settings) TeamCommands {
	return &teamUseCase{uow: uow, clock: clk, settings: settings}
}

func (uc *teamUseCase) Create(ctx context.Context, actor user.Actor, req CreateTeamRequest) (uuid.UUID, error) {
	t, captain, err := team.New(actor.UserID, req.Name, req.Logo, req.Time, req.Address, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Teams().CountActiveMemberships(ctx, tx.DB(), actor.UserID)
		if err != nil {
			return err
		}
		if err := uc.settings.Limits.CheckTeamCount(count); err != nil {
			return err
		}
		if err := tx.Teams().Create(ctx, tx.DB(), t); err != nil {
			return err
		}
		return tx.Members().Create(ctx, tx.DB(), captain)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID(), nil
}

func (uc *teamUseCase) Update(ctx context.Context, actor user.Actor, teamID uuid.UUID, u team.Update) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := lockTeam(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if err := t.Apply(actor.UserID, u, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Teams().Update(ctx, tx.DB(), t)
	})
}

func (uc *teamUseCase) Deactivate(ctx context.Context, actor user.Actor, teamID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := lockTeam(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if err := t.Deactivate(actor.UserID, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Teams().Update(ctx, tx.DB(), t)
	})
}

func (uc *teamUseCase) RemoveMember(ctx context.Context, actor user.Actor, teamID, playerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := lockTeam(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if err := t.RequireCaptain(actor.UserID); err != nil {
			return err
		}
		if playerID == actor.UserID {
			return team.ErrCaptainRemovesSelf
		}
		m, err := tx.Members().FindCounted(ctx, tx.DB(), teamID, playerID)
		if err != nil {
			return notFoundAs(err, team.ErrMemberNotFound)
		}
		if err := team.RemoveMember(t, m, actor.UserID, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Members().Update(ctx, tx.DB(), m)
	})
}

func (uc *teamUseCase) Leave(ctx context.Context, actor user.Actor, teamID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := lockTeam(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if !t.IsActive() {
			return team.ErrNotFound
		}
		if t.IsCaptain(actor.UserID) {
			return team.ErrCaptainCannotLeave
		}
		m, err := tx.Members().FindCounted(ctx, tx.DB(), teamID, actor.UserID)
		if err != nil {
			return notFoundAs(err, team.ErrMemberNotFound)
		}
		if err := team.Leave(t, m, actor.UserID, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Members().Update(ctx, tx.DB(), m)
	})
}

func lockTeam(ctx context.Context, tx shared.Tx, teamID uuid.UUID) (*team.Team, error) {
	t, err := tx.Teams().FindForUpdate(ctx, tx.DB(), teamID)
	if err != nil {
		return nil, notFoundAs(err, team.ErrNotFound)
	}
	return t, nil
}
