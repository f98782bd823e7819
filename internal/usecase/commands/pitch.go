package commands

import (
	"context"

	"pitch-booking/internal/domain/pitch"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PitchCommands interface {
	Create(ctx context.Context, actor user.Actor, p pitch.Params) (uuid.UUID, error)
	Update(ctx context.Context, actor user.Actor, pitchID uuid.UUID, u pitch.Update) error
	SetActive(ctx context.Context, actor user.Actor, pitchID uuid.UUID, active bool) error
}

type pitchUseCase struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPitchUseCase(uow shared.UnitOfWork, clk clock.Clock) PitchCommands {
	return &pitchUseCase{uow: uow, clock: clk}
}

func (uc *pitchUseCase) Create(ctx context.Context, actor user.Actor, params pitch.Params) (uuid.UUID, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return uuid.Nil, err
	}
	params.ClubID = clubID
	params.ID = uuid.Nil
	p, err := pitch.New(params, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pitches().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *pitchUseCase) Update(ctx context.Context, actor user.Actor, pitchID uuid.UUID, u pitch.Update) error {
	return uc.mutate(ctx, actor, pitchID, func(p *pitch.Pitch) error {
		return p.Apply(u, uc.clock.Now())
	})
}

func (uc *pitchUseCase) SetActive(ctx context.Context, actor user.Actor, pitchID uuid.UUID, active bool) error {
	return uc.mutate(ctx, actor, pitchID, func(p *pitch.Pitch) error {
		p.SetActive(active, uc.clock.Now())
		return nil
	})
}

func (uc *pitchUseCase) mutate(ctx context.Context, actor user.Actor, pitchID uuid.UUID, fn func(*pitch.Pitch) error) error {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Pitches().FindForUpdate(ctx, tx.DB(), pitchID)
		if err != nil {
			return notFoundAs(err, ErrPitchNotFound)
		}
		if p.ClubID() != clubID {
			return ErrPitchNotFound
		}
		if err := fn(p); err != nil {
			return err
		}
		return tx.Pitches().Update(ctx, tx.DB(), p)
	})
}
