package readstore

import (
	"context"
	"time"

	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const clubViewColumns = `id, name, description, address, latitude, longitude, open_time, close_time,
	working_days, logo, rating_avg, rating_count, flexible_reservation, is_active`

const (
	getClubViewSQL = `SELECT ` + clubViewColumns + ` FROM clubs WHERE id = $1`

	listActiveClubsSQL = `SELECT ` + clubViewColumns + ` FROM clubs
WHERE is_active
ORDER BY rating_avg DESC, rating_count DESC, name`

	listPitchViewsSQL = `SELECT id, club_id, name, image, type, size_high, size_width, is_active,
	price_first, price_second, time_interval
FROM pitches WHERE club_id = $1
ORDER BY type, name`

	listPricingRuleViewsSQL = `SELECT id, type, day_of_week, date, start_time, end_time, percent
FROM club_pricing
WHERE club_id = $1 AND (type = 1 OR date >= $2)
ORDER BY type, day_of_week NULLS LAST, date NULLS LAST`
)

type ClubReadStore struct {
	db db.DBTX
}

func NewClubReadStore(db db.DBTX) *ClubReadStore {
	return &ClubReadStore{db: db}
}

func (r *ClubReadStore) FindClub(ctx context.Context, id uuid.UUID) (*queries.ClubView, error) {
	c, err := scanClubView(r.db.QueryRow(ctx, getClubViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("club not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get club view", err)
	}
	return c, nil
}

func (r *ClubReadStore) ListActiveClubs(ctx context.Context) ([]*queries.ClubView, error) {
	rows, err := r.db.Query(ctx, listActiveClubsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clubs", err)
	}
	defer rows.Close()

	out := []*queries.ClubView{}
	for rows.Next() {
		c, err := scanClubView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan club", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list clubs", err)
	}
	return out, nil
}

func (r *ClubReadStore) ListPitches(ctx context.Context, clubID uuid.UUID) ([]*queries.PitchView, error) {
	rows, err := r.db.Query(ctx, listPitchViewsSQL, clubID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pitches", err)
	}
	defer rows.Close()

	out := []*queries.PitchView{}
	for rows.Next() {
		var (
			p             queries.PitchView
			first, second pgtype.Numeric
			interval      pgtype.Time
		)
		if err := rows.Scan(&p.ID, &p.ClubID, &p.Name, &p.ImageURL, &p.Type, &p.SizeHigh, &p.SizeWidth,
			&p.IsActive, &first, &second, &interval); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pitch", err)
		}
		if p.PriceFirst, err = pgconv.DecimalFromNumeric(first); err != nil {
			return nil, infra.WrapRepoErr("invalid pitch price", err)
		}
		if p.PriceSecond, err = pgconv.DecimalFromNumeric(second); err != nil {
			return nil, infra.WrapRepoErr("invalid pitch price", err)
		}
		if p.TimeInterval, err = pgconv.TimeOfDayFromPgtype(interval); err != nil {
			return nil, infra.WrapRepoErr("invalid pitch time interval", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list pitches", err)
	}
	return out, nil
}

func (r *ClubReadStore) ListPricingRules(ctx context.Context, clubID uuid.UUID, from time.Time) ([]*queries.PricingRuleView, error) {
	rows, err := r.db.Query(ctx, listPricingRuleViewsSQL, clubID, pgconv.DateToPgtype(from))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	out := []*queries.PricingRuleView{}
	for rows.Next() {
		var (
			v          queries.PricingRuleView
			ruleType   int16
			dayOfWeek  pgtype.Int2
			date       pgtype.Date
			start, end pgtype.Time
			percent    pgtype.Numeric
		)
		if err := rows.Scan(&v.ID, &ruleType, &dayOfWeek, &date, &start, &end, &percent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		if v.StartTime, err = pgconv.TimeOfDayFromPgtype(start); err != nil {
			return nil, infra.WrapRepoErr("invalid rule start", err)
		}
		if v.EndTime, err = pgconv.TimeOfDayFromPgtype(end); err != nil {
			return nil, infra.WrapRepoErr("invalid rule end", err)
		}
		if v.Percent, err = pgconv.DecimalFromNumeric(percent); err != nil {
			return nil, infra.WrapRepoErr("invalid rule percent", err)
		}
		v.Type = pricing.RuleType(ruleType).String()
		v.DayOfWeek = pgconv.Int16PtrFromPgtype(dayOfWeek)
		v.Date = pgconv.DatePtrFromPgtype(date)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	return out, nil
}

func scanClubView(row rowScanner) (*queries.ClubView, error) {
	var (
		c                   queries.ClubView
		lat, long, rating   pgtype.Numeric
		openTime, closeTime pgtype.Time
	)
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Address, &lat, &long, &openTime, &closeTime,
		&c.WorkingDays, &c.LogoURL, &rating, &c.RatingCount, &c.FlexibleReservation, &c.IsActive)
	if err != nil {
		return nil, err
	}
	if c.Latitude, err = pgconv.DecimalPtrFromNumeric(lat); err != nil {
		return nil, err
	}
	if c.Longitude, err = pgconv.DecimalPtrFromNumeric(long); err != nil {
		return nil, err
	}
	if c.RatingAvg, err = pgconv.DecimalFromNumeric(rating); err != nil {
		return nil, err
	}
	if c.OpenTime, err = pgconv.TimeOfDayFromPgtype(openTime); err != nil {
		return nil, err
	}
	if c.CloseTime, err = pgconv.TimeOfDayFromPgtype(closeTime); err != nil {
		return nil, err
	}
	return &c, nil
}
