package readstore

import (
	"context"

	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listClubReviewsFirstPageSQL = `SELECT r.id, u.username, r.rating, r.comment, r.created_at
FROM reviews r JOIN users u ON u.id = r.player_id
WHERE r.club_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

	listClubReviewsKeysetSQL = `SELECT r.id, u.username, r.rating, r.comment, r.created_at
FROM reviews r JOIN users u ON u.id = r.player_id
WHERE r.club_id = $1 AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) ListByClub(ctx context.Context, clubID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = r.db.Query(ctx, listClubReviewsFirstPageSQL, clubID, limit)
	} else {
		rows, err = r.db.Query(ctx, listClubReviewsKeysetSQL, clubID, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list club reviews", err)
	}
	defer rows.Close()

	out := []*queries.ReviewListItem{}
	for rows.Next() {
		var item queries.ReviewListItem
		if err := rows.Scan(&item.ID, &item.Player, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list club reviews", err)
	}
	return out, nil
}
