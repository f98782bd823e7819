package pitch

import (
	"strings"
	"time"

	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxNameLength = 100

var (
	ErrEmptyName   = errs.Validation("pitch name cannot be empty")
	ErrNameTooLong = errs.Validation("pitch name exceeds maximum length")
	ErrInvalidSize = errs.Validation("pitch size must be positive")
	ErrInactive    = errs.Validation("pitch is not active")
	ErrInvalidType = errs.Validation("pitch type is required")
)

type Pitch struct {
	id        uuid.UUID
	clubID    uuid.UUID
	name      string
	image     string
	pitchType string
	sizeHigh  int
	sizeWidth int
	isActive  bool
	rates     pricing.Rates
	createdAt time.Time
	updatedAt time.Time
}

type Params struct {
	ID        uuid.UUID
	ClubID    uuid.UUID
	Name      string
	Image     string
	Type      string
	SizeHigh  int
	SizeWidth int
	IsActive  bool
	Rates     pricing.Rates
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(p Params, now time.Time) (*Pitch, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	pt := Reconstruct(p)
	pt.name = strings.TrimSpace(pt.name)
	pt.pitchType = strings.TrimSpace(pt.pitchType)
	if err := pt.validate(); err != nil {
		return nil, err
	}
	return pt, nil
}

func Reconstruct(p Params) *Pitch {
	return &Pitch{
		id:        p.ID,
		clubID:    p.ClubID,
		name:      p.Name,
		image:     p.Image,
		pitchType: p.Type,
		sizeHigh:  p.SizeHigh,
		sizeWidth: p.SizeWidth,
		isActive:  p.IsActive,
		rates:     p.Rates,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
}

func (p *Pitch) ID() uuid.UUID        { return p.id }
func (p *Pitch) ClubID() uuid.UUID    { return p.clubID }
func (p *Pitch) Name() string         { return p.name }
func (p *Pitch) Image() string        { return p.image }
func (p *Pitch) Type() string         { return p.pitchType }
func (p *Pitch) SizeHigh() int        { return p.sizeHigh }
func (p *Pitch) SizeWidth() int       { return p.sizeWidth }
func (p *Pitch) IsActive() bool       { return p.isActive }
func (p *Pitch) Rates() pricing.Rates { return p.rates }
func (p *Pitch) CreatedAt() time.Time { return p.createdAt }
func (p *Pitch) UpdatedAt() time.Time { return p.updatedAt }

// Price is the cost of [start, end) on a day with the given multiplier.
func (p *Pitch) Price(percent decimal.Decimal, start, end daytime.TimeOfDay) decimal.Decimal {
	return pricing.CalculatePrice(p.rates, percent, start, end)
}

type Update struct {
	Name        *string
	Image       *string
	Type        *string
	SizeHigh    *int
	SizeWidth   *int
	PriceFirst  *decimal.Decimal
	PriceSecond *decimal.Decimal
	Cutoff      *daytime.TimeOfDay
}

func (p *Pitch) Apply(u Update, now time.Time) error {
	next := *p
	if u.Name != nil {
		next.name = strings.TrimSpace(*u.Name)
	}
	next.image = patch.Coalesce(u.Image, next.image)
	if u.Type != nil {
		next.pitchType = strings.TrimSpace(*u.Type)
	}
	next.sizeHigh = patch.Coalesce(u.SizeHigh, next.sizeHigh)
	next.sizeWidth = patch.Coalesce(u.SizeWidth, next.sizeWidth)
	next.rates.PriceFirst = patch.Coalesce(u.PriceFirst, next.rates.PriceFirst)
	next.rates.PriceSecond = patch.Coalesce(u.PriceSecond, next.rates.PriceSecond)
	next.rates.Cutoff = patch.Coalesce(u.Cutoff, next.rates.Cutoff)
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*p = next
	return nil
}

func (p *Pitch) SetActive(active bool, now time.Time) {
	p.isActive = active
	p.updatedAt = now
}

func (p *Pitch) validate() error {
	if p.name == "" {
		return ErrEmptyName
	}
	if len(p.name) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.pitchType == "" {
		return ErrInvalidType
	}
	if p.sizeHigh <= 0 || p.sizeWidth <= 0 {
		return ErrInvalidSize
	}
	return p.rates.Validate()
}
