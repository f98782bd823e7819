package repository

import (
	"context"
	"time"

	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/infra"
	"pitch-booking/internal/infra/db"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const ruleColumns = `id, club_id, type, day_of_week, date, start_time, end_time, percent`

const (
	insertRuleSQL = `INSERT INTO club_pricing (` + ruleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectRuleForUpdateSQL = `SELECT ` + ruleColumns + ` FROM club_pricing WHERE id = $1 FOR UPDATE`

	updateRuleSQL = `UPDATE club_pricing SET start_time = $2, end_time = $3, percent = $4 WHERE id = $1`

	deleteRuleSQL = `DELETE FROM club_pricing WHERE id = $1`

	selectRulesForDatesSQL = `SELECT ` + ruleColumns + ` FROM club_pricing
WHERE club_id = $1 AND ((type = 2 AND date = ANY($2)) OR (type = 1 AND day_of_week = ANY($3)))`
)

type PricingRuleRepository struct{}

func NewPricingRuleRepository() *PricingRuleRepository {
	return &PricingRuleRepository{}
}

func (r *PricingRuleRepository) Create(ctx context.Context, tx db.DBTX, rule *pricing.Rule) error {
	_, err := tx.Exec(ctx, insertRuleSQL,
		rule.ID(), rule.ClubID(), int16(rule.Type()),
		pgconv.Int16PtrToPgtype(rule.DayOfWeek()), pgconv.DatePtrToPgtype(rule.Date()),
		pgconv.TimeOfDayToPgtype(rule.StartTime()), pgconv.TimeOfDayToPgtype(rule.EndTime()),
		pgconv.NumericFromDecimal(rule.Percent()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pricing rule", err)
	}
	return nil
}

func (r *PricingRuleRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*pricing.Rule, error) {
	rule, err := scanRule(tx.QueryRow(ctx, selectRuleForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pricing rule", err)
	}
	return rule, nil
}

func (r *PricingRuleRepository) Update(ctx context.Context, tx db.DBTX, rule *pricing.Rule) error {
	_, err := tx.Exec(ctx, updateRuleSQL, rule.ID(),
		pgconv.TimeOfDayToPgtype(rule.StartTime()), pgconv.TimeOfDayToPgtype(rule.EndTime()),
		pgconv.NumericFromDecimal(rule.Percent()))
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing rule", err)
	}
	return nil
}

func (r *PricingRuleRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, deleteRuleSQL, id); err != nil {
		return infra.WrapRepoErr("failed to delete pricing rule", err)
	}
	return nil
}

func (r *PricingRuleRepository) ForDates(ctx context.Context, tx db.DBTX, clubID uuid.UUID, dates []time.Time) ([]*pricing.Rule, error) {
	pgDates := make([]pgtype.Date, 0, len(dates))
	weekdays := make([]int16, 0, 7)
	seen := make(map[int]bool, 7)
	for _, d := range dates {
		pgDates = append(pgDates, pgconv.DateToPgtype(d))
		if idx := pricing.WeekdayIndex(d); !seen[idx] {
			seen[idx] = true
			weekdays = append(weekdays, int16(idx))
		}
	}

	rows, err := tx.Query(ctx, selectRulesForDatesSQL, clubID, pgDates, weekdays)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var out []*pricing.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	return out, nil
}

func scanRule(row rowScanner) (*pricing.Rule, error) {
	var (
		p          pricing.RuleParams
		ruleType   int16
		dayOfWeek  pgtype.Int2
		date       pgtype.Date
		start, end pgtype.Time
		percent    pgtype.Numeric
	)
	err := row.Scan(&p.ID, &p.ClubID, &ruleType, &dayOfWeek, &date, &start, &end, &percent)
	if err != nil {
		return nil, err
	}
	if p.StartTime, err = pgconv.TimeOfDayFromPgtype(start); err != nil {
		return nil, err
	}
	if p.EndTime, err = pgconv.TimeOfDayFromPgtype(end); err != nil {
		return nil, err
	}
	if p.Percent, err = pgconv.DecimalFromNumeric(percent); err != nil {
		return nil, err
	}
	p.Type = pricing.RuleType(ruleType)
	p.DayOfWeek = pgconv.Int16PtrFromPgtype(dayOfWeek)
	p.Date = pgconv.DatePtrFromPgtype(date)
	return pricing.ReconstructRule(p), nil
}
