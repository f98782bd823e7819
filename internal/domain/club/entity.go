package club

import (
	"strings"
	"time"

	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxNameLength = 200

var (
	ErrEmptyName       = errs.Validation("club name cannot be empty")
	ErrNameTooLong     = errs.Validation("club name exceeds maximum length")
	ErrInvalidHours    = errs.Validation("close_time must be after open_time")
	ErrInvalidRating   = errs.Validation("rating must be between 1 and 5")
	ErrInvalidLocation = errs.Validation("latitude or longitude out of range")
)

type Club struct {
	id                  uuid.UUID
	managerID           uuid.UUID
	name                string
	description         string
	address             string
	latitude            *decimal.Decimal
	longitude           *decimal.Decimal
	openTime            daytime.TimeOfDay
	closeTime           daytime.TimeOfDay
	workingDays         WorkingDays
	logo                string
	ratingAvg           decimal.Decimal
	ratingCount         int
	flexibleReservation bool
	isActive            bool
	createdAt           time.Time
	updatedAt           time.Time
}

type Params struct {
	ID                  uuid.UUID
	ManagerID           uuid.UUID
	Name                string
	Description         string
	Address             string
	Latitude            *decimal.Decimal
	Longitude           *decimal.Decimal
	OpenTime            daytime.TimeOfDay
	CloseTime           daytime.TimeOfDay
	WorkingDays         WorkingDays
	Logo                string
	RatingAvg           decimal.Decimal
	RatingCount         int
	FlexibleReservation bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func Reconstruct(p Params) *Club {
	return &Club{
		id:                  p.ID,
		managerID:           p.ManagerID,
		name:                p.Name,
		description:         p.Description,
		address:             p.Address,
		latitude:            p.Latitude,
		longitude:           p.Longitude,
		openTime:            p.OpenTime,
		closeTime:           p.CloseTime,
		workingDays:         p.WorkingDays,
		logo:                p.Logo,
		ratingAvg:           p.RatingAvg,
		ratingCount:         p.RatingCount,
		flexibleReservation: p.FlexibleReservation,
		isActive:            p.IsActive,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}
}

func (c *Club) ID() uuid.UUID                { return c.id }
func (c *Club) ManagerID() uuid.UUID         { return c.managerID }
func (c *Club) Name() string                 { return c.name }
func (c *Club) Description() string          { return c.description }
func (c *Club) Address() string              { return c.address }
func (c *Club) Latitude() *decimal.Decimal   { return c.latitude }
func (c *Club) Longitude() *decimal.Decimal  { return c.longitude }
func (c *Club) OpenTime() daytime.TimeOfDay  { return c.openTime }
func (c *Club) CloseTime() daytime.TimeOfDay { return c.closeTime }
func (c *Club) WorkingDays() WorkingDays     { return c.workingDays }
func (c *Club) Logo() string                 { return c.logo }
func (c *Club) RatingAvg() decimal.Decimal   { return c.ratingAvg }
func (c *Club) RatingCount() int             { return c.ratingCount }
func (c *Club) FlexibleReservation() bool    { return c.flexibleReservation }
func (c *Club) IsActive() bool               { return c.isActive }
func (c *Club) CreatedAt() time.Time         { return c.createdAt }
func (c *Club) UpdatedAt() time.Time         { return c.updatedAt }

// Update carries optional changes; nil fields are left as they are.
type Update struct {
	Name                *string
	Description         *string
	Address             *string
	Latitude            *decimal.Decimal
	Longitude           *decimal.Decimal
	OpenTime            *daytime.TimeOfDay
	CloseTime           *daytime.TimeOfDay
	WorkingDays         *WorkingDays
	Logo                *string
	FlexibleReservation *bool
}

func (c *Club) Apply(u Update, now time.Time) error {
	next := *c
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return ErrEmptyName
		}
		if len(name) > MaxNameLength {
			return ErrNameTooLong
		}
		next.name = name
	}
	if u.Description != nil {
		next.description = strings.TrimSpace(*u.Description)
	}
	if u.Address != nil {
		next.address = strings.TrimSpace(*u.Address)
	}
	if u.Latitude != nil {
		if u.Latitude.Abs().GreaterThan(decimal.NewFromInt(90)) {
			return ErrInvalidLocation
		}
		next.latitude = u.Latitude
	}
	if u.Longitude != nil {
		if u.Longitude.Abs().GreaterThan(decimal.NewFromInt(180)) {
			return ErrInvalidLocation
		}
		next.longitude = u.Longitude
	}
	next.openTime = patch.Coalesce(u.OpenTime, c.openTime)
	next.closeTime = patch.Coalesce(u.CloseTime, c.closeTime)
	if !next.openTime.Before(next.closeTime) {
		return ErrInvalidHours
	}
	next.workingDays = patch.Coalesce(u.WorkingDays, c.workingDays)
	next.logo = patch.Coalesce(u.Logo, c.logo)
	next.flexibleReservation = patch.Coalesce(u.FlexibleReservation, c.flexibleReservation)
	next.updatedAt = now
	*c = next
	return nil
}

// ApplyRating folds one new review into the running average. The caller must
// hold a row lock on the club.
func (c *Club) ApplyRating(rating int, now time.Time) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	avg, count := NextRating(c.ratingAvg, c.ratingCount, rating)
	c.ratingAvg = avg
	c.ratingCount = count
	c.updatedAt = now
	return nil
}

// NextRating is ((avg*count)+rating)/(count+1) rounded half-up to 2 places.
func NextRating(avg decimal.Decimal, count, rating int) (decimal.Decimal, int) {
	newCount := count + 1
	total := avg.Mul(decimal.NewFromInt(int64(count))).Add(decimal.NewFromInt(int64(rating)))
	return total.DivRound(decimal.NewFromInt(int64(newCount)), 2), newCount
}
