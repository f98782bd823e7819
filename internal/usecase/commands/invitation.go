package commands

import (
	"context"
	"strings"

	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvitationCommands interface {
	Invite(ctx context.Context, actor user.Actor, teamID uuid.UUID, username string) (uuid.UUID, error)
	Respond(ctx context.Context, actor user.Actor, invitationID uuid.UUID, accept bool) error
}

type invitationUseCase struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewInvitationUseCase(uow shared.UnitOfWork, clk clock.Clock, settings Settings) InvitationCommands {
	return &invitationUseCase{uow: uow, clock: clk, settings: settings}
}

func (uc *invitationUseCase) Invite(ctx context.Context, actor user.Actor, teamID uuid.UUID, username string) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := lockTeam(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if err := t.RequireCaptain(actor.UserID); err != nil {
			return err
		}

		player, err := tx.Users().FindByUsername(ctx, tx.DB(), strings.TrimSpace(username))
		if err != nil {
			return notFoundAs(err, ErrPlayerNotFound)
		}

		member, err := isCountedMember(ctx, tx, teamID, player.ID)
		if err != nil {
			return err
		}
		pending, err := tx.Invitations().ExistsPending(ctx, tx.DB(), teamID, player.ID)
		if err != nil {
			return err
		}
		count, err := tx.Members().CountCounted(ctx, tx.DB(), teamID)
		if err != nil {
			return err
		}

		inv, err := team.Invite(t, actor.UserID, player.ID, member, pending, count, uc.settings.Limits, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Invitations().Create(ctx, tx.DB(), inv); err != nil {
			return err
		}
		id = inv.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *invitationUseCase) Respond(ctx context.Context, actor user.Actor, invitationID uuid.UUID, accept bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invitations().FindForUpdate(ctx, tx.DB(), invitationID)
		if err != nil {
			return notFoundAs(err, team.ErrInvitationNotFound)
		}
		t, err := lockTeam(ctx, tx, inv.TeamID())
		if err != nil {
			return err
		}

		if !accept {
			if err := inv.Reject(t, actor.UserID); err != nil {
				return err
			}
			return tx.Invitations().UpdateStatus(ctx, tx.DB(), inv)
		}

		if err := inv.CheckRespond(t, actor.UserID); err != nil {
			return err
		}
		member, err := isCountedMember(ctx, tx, t.ID(), actor.UserID)
		if err != nil {
			return err
		}
		count, err := tx.Members().CountCounted(ctx, tx.DB(), t.ID())
		if err != nil {
			return err
		}
		teams, err := tx.Teams().CountActiveMemberships(ctx, tx.DB(), actor.UserID)
		if err != nil {
			return err
		}
		m, err := inv.Accept(t, actor.UserID, member, count, teams, uc.settings.Limits, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Members().Create(ctx, tx.DB(), m); err != nil {
			return err
		}
		return tx.Invitations().UpdateStatus(ctx, tx.DB(), inv)
	})
}

func isCountedMember(ctx context.Context, tx shared.Tx, teamID, playerID uuid.UUID) (bool, error) {
	_, err := tx.Members().FindCounted(ctx, tx.DB(), teamID, playerID)
	if err == nil {
		return true, nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return false, nil
	}
	return false, err
}
