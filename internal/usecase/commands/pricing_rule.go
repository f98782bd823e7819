package commands

import (
	"context"

	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingRuleCommands interface {
	Create(ctx context.Context, actor user.Actor, p pricing.RuleParams) (uuid.UUID, error)
	Update(ctx context.Context, actor user.Actor, ruleID uuid.UUID, u pricing.RuleUpdate) error
	Delete(ctx context.Context, actor user.Actor, ruleID uuid.UUID) error
}

type pricingRuleUseCase struct {
	uow shared.UnitOfWork
}

func NewPricingRuleUseCase(uow shared.UnitOfWork) PricingRuleCommands {
	return &pricingRuleUseCase{uow: uow}
}

func (uc *pricingRuleUseCase) Create(ctx context.Context, actor user.Actor, params pricing.RuleParams) (uuid.UUID, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return uuid.Nil, err
	}
	params.ClubID = clubID
	params.ID = uuid.Nil

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Clubs().FindByID(ctx, tx.DB(), clubID)
		if err != nil {
			return notFoundAs(err, ErrClubNotFound)
		}
		r, err := pricing.NewRule(params, c.WorkingDays())
		if err != nil {
			return err
		}
		if err := tx.PricingRules().Create(ctx, tx.DB(), r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return pricing.ErrDuplicateRule
			}
			return err
		}
		id = r.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *pricingRuleUseCase) Update(ctx context.Context, actor user.Actor, ruleID uuid.UUID, u pricing.RuleUpdate) error {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockRule(ctx, tx, clubID, ruleID)
		if err != nil {
			return err
		}
		c, err := tx.Clubs().FindByID(ctx, tx.DB(), clubID)
		if err != nil {
			return notFoundAs(err, ErrClubNotFound)
		}
		if err := r.Apply(u, c.WorkingDays()); err != nil {
			return err
		}
		return tx.PricingRules().Update(ctx, tx.DB(), r)
	})
}

func (uc *pricingRuleUseCase) Delete(ctx context.Context, actor user.Actor, ruleID uuid.UUID) error {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockRule(ctx, tx, clubID, ruleID); err != nil {
			return err
		}
		return tx.PricingRules().Delete(ctx, tx.DB(), ruleID)
	})
}

func lockRule(ctx context.Context, tx shared.Tx, clubID, ruleID uuid.UUID) (*pricing.Rule, error) {
	r, err := tx.PricingRules().FindForUpdate(ctx, tx.DB(), ruleID)
	if err != nil {
		return nil, notFoundAs(err, ErrRuleNotFound)
	}
	if r.ClubID() != clubID {
		return nil, ErrRuleNotFound
	}
	return r, nil
}
