package queries

import (
	"context"
	"strings"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/infra"

	"github.com/google/uuid"
)

const UserSearchLimit = 10

type TeamReadStore interface {
	// ListForPlayer returns active teams where the player is an ACTIVE member.
	ListForPlayer(ctx context.Context, playerID uuid.UUID) ([]*TeamView, error)
	FindActive(ctx context.Context, id uuid.UUID) (*TeamView, error)
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]MemberView, error)
	// ListPendingInvitations covers active teams only, newest first.
	ListPendingInvitations(ctx context.Context, playerID uuid.UUID) ([]*InvitationView, error)
	SearchUsers(ctx context.Context, term string, limit int32) ([]*UserSearchItem, error)
}

type TeamQueries interface {
	MyTeams(ctx context.Context, actor user.Actor) ([]*TeamView, error)
	Detail(ctx context.Context, teamID uuid.UUID) (*TeamDetail, error)
	MyInvitations(ctx context.Context, actor user.Actor) ([]*InvitationView, error)
	SearchUsers(ctx context.Context, term string) ([]*UserSearchItem, error)
}

type teamQueries struct {
	store TeamReadStore
	media MediaResolver
}

func NewTeamQueries(store TeamReadStore, media MediaResolver) TeamQueries {
	return &teamQueries{store: store, media: media}
}

func (q *teamQueries) MyTeams(ctx context.Context, actor user.Actor) ([]*TeamView, error) {
	teams, err := q.store.ListForPlayer(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		t.LogoURL = q.media.URL(t.LogoURL)
	}
	return teams, nil
}

func (q *teamQueries) Detail(ctx context.Context, teamID uuid.UUID) (*TeamDetail, error) {
	t, err := q.store.FindActive(ctx, teamID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	members, err := q.store.ListMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	t.LogoURL = q.media.URL(t.LogoURL)
	return &TeamDetail{TeamView: *t, Members: members}, nil
}

func (q *teamQueries) MyInvitations(ctx context.Context, actor user.Actor) ([]*InvitationView, error) {
	return q.store.ListPendingInvitations(ctx, actor.UserID)
}

// SearchUsers matches usernames case-insensitively. An empty term finds nobody.
func (q *teamQueries) SearchUsers(ctx context.Context, term string) ([]*UserSearchItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*UserSearchItem{}, nil
	}
	return q.store.SearchUsers(ctx, term, UserSearchLimit)
}
