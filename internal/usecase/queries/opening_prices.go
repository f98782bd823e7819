package queries

import (
	"context"
	"time"

	"pitch-booking/internal/domain/pitch"
	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxOpeningDays = 60

type Settings struct {
	Location          *time.Location
	PlayerOpeningDays int
	OwnerOpeningDays  int
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

type OpeningPriceQueries interface {
	// ForManager lists the managed club's next days. days nil means the
	// configured default.
	ForManager(ctx context.Context, actor user.Actor, days *int) ([]OpeningDay, error)
	ForPlayer(ctx context.Context, clubID uuid.UUID) ([]OpeningDay, error)
}

type openingPriceQueries struct {
	uow      shared.UnitOfWork
	media    MediaResolver
	clock    clock.Clock
	settings Settings
}

func NewOpeningPriceQueries(uow shared.UnitOfWork, media MediaResolver, clk clock.Clock, settings Settings) OpeningPriceQueries {
	return &openingPriceQueries{uow: uow, media: media, clock: clk, settings: settings}
}

func (q *openingPriceQueries) ForManager(ctx context.Context, actor user.Actor, days *int) ([]OpeningDay, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	n := q.settings.OwnerOpeningDays
	if days != nil {
		n = *days
	}
	if n < 1 || n > MaxOpeningDays {
		return nil, ErrInvalidDays
	}
	return q.resolve(ctx, clubID, n, false)
}

func (q *openingPriceQueries) ForPlayer(ctx context.Context, clubID uuid.UUID) ([]OpeningDay, error) {
	return q.resolve(ctx, clubID, q.settings.PlayerOpeningDays, true)
}

func (q *openingPriceQueries) resolve(ctx context.Context, clubID uuid.UUID, days int, activeOnly bool) ([]OpeningDay, error) {
	var out []OpeningDay
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Clubs().FindByID(ctx, tx.DB(), clubID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrClubNotFound
			}
			return err
		}
		if activeOnly && !c.IsActive() {
			return ErrClubNotFound
		}

		pitches, err := tx.Pitches().ListByClub(ctx, tx.DB(), clubID, activeOnly)
		if err != nil {
			return err
		}
		from := daytime.Today(q.clock, q.settings.location())
		rules, err := tx.PricingRules().ForDates(ctx, tx.DB(), clubID, pricing.Dates(from, days))
		if err != nil {
			return err
		}

		out = q.build(pitches, pricing.Resolve(pricing.HoursOf(c), rules, from, days))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *openingPriceQueries) build(pitches []*pitch.Pitch, schedule []pricing.DaySchedule) []OpeningDay {
	out := make([]OpeningDay, 0, len(schedule))
	for _, day := range schedule {
		prices := make([]PitchPrice, 0, len(pitches))
		for _, p := range pitches {
			rates := p.Rates()
			prices = append(prices, PitchPrice{
				ID:           p.ID(),
				Name:         p.Name(),
				Type:         p.Type(),
				ImageURL:     q.media.URL(p.Image()),
				PriceFirst:   pricing.AdjustedRate(rates.PriceFirst, day.Percent),
				PriceSecond:  pricing.AdjustedRate(rates.PriceSecond, day.Percent),
				TimeInterval: rates.Cutoff,
				SizeHigh:     p.SizeHigh(),
				SizeWidth:    p.SizeWidth(),
				IsActive:     p.IsActive(),
			})
		}
		out = append(out, OpeningDay{
			Date:      day.Date,
			StartTime: day.Start,
			EndTime:   day.End,
			Percent:   day.Percent,
			Pitches:   prices,
		})
	}
	return out
}
