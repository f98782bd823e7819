package queries

import (
	"context"
	"time"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/pkg/daytime"

	"github.com/google/uuid"
)

type ClubReadStore interface {
	FindClub(ctx context.Context, id uuid.UUID) (*ClubView, error)
	// ListActiveClubs orders by rating_avg descending.
	ListActiveClubs(ctx context.Context) ([]*ClubView, error)
	ListPitches(ctx context.Context, clubID uuid.UUID) ([]*PitchView, error)
	// ListPricingRules returns weekly rules and date rules on or after from.
	ListPricingRules(ctx context.Context, clubID uuid.UUID, from time.Time) ([]*PricingRuleView, error)
}

type ClubQueries interface {
	ListActive(ctx context.Context) ([]*ClubView, error)
	GetManaged(ctx context.Context, actor user.Actor) (*ClubView, error)
	ListPitches(ctx context.Context, actor user.Actor) ([]*PitchView, error)
	ListPricingRules(ctx context.Context, actor user.Actor) ([]*PricingRuleView, error)
}

type clubQueries struct {
	store    ClubReadStore
	media    MediaResolver
	clock    clock.Clock
	settings Settings
}

func NewClubQueries(store ClubReadStore, media MediaResolver, clk clock.Clock, settings Settings) ClubQueries {
	return &clubQueries{store: store, media: media, clock: clk, settings: settings}
}

func (q *clubQueries) ListActive(ctx context.Context) ([]*ClubView, error) {
	clubs, err := q.store.ListActiveClubs(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clubs {
		c.LogoURL = q.media.URL(c.LogoURL)
	}
	return clubs, nil
}

func (q *clubQueries) GetManaged(ctx context.Context, actor user.Actor) (*ClubView, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	c, err := q.store.FindClub(ctx, clubID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	c.LogoURL = q.media.URL(c.LogoURL)
	return c, nil
}

func (q *clubQueries) ListPitches(ctx context.Context, actor user.Actor) ([]*PitchView, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	pitches, err := q.store.ListPitches(ctx, clubID)
	if err != nil {
		return nil, err
	}
	for _, p := range pitches {
		p.ImageURL = q.media.URL(p.ImageURL)
	}
	return pitches, nil
}

func (q *clubQueries) ListPricingRules(ctx context.Context, actor user.Actor) ([]*PricingRuleView, error) {
	clubID, err := actor.ManagedClub()
	if err != nil {
		return nil, err
	}
	return q.store.ListPricingRules(ctx, clubID, daytime.Today(q.clock, q.settings.location()))
}
