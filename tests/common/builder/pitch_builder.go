//go:build unit || e2e

package builder

import (
	reqdto "pitch-booking/internal/handler/dto/request"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PitchBuilder struct {
	ID           uuid.UUID
	ClubID       uuid.UUID
	Name         string
	Image        string
	Type         string
	SizeHigh     int
	SizeWidth    int
	PriceFirst   decimal.Decimal
	PriceSecond  decimal.Decimal
	TimeInterval daytime.TimeOfDay
	IsActive     bool
}

func NewPitchBuilder() *PitchBuilder {
	return &PitchBuilder{
		ID:           uuid.New(),
		ClubID:       uuid.New(),
		Name:         "Pitch A",
		Image:        "pitches/a.jpg",
		Type:         "grass",
		SizeHigh:     100,
		SizeWidth:    60,
		PriceFirst:   decimal.RequireFromString("100"),
		PriceSecond:  decimal.RequireFromString("150"),
		TimeInterval: daytime.MustParse("17:00"),
		IsActive:     true,
	}
}

func (p *PitchBuilder) With(mutate func(*PitchBuilder)) *PitchBuilder {
	mutate(p)
	return p
}

func (p *PitchBuilder) BuildCreateRequestDTO() reqdto.CreatePitchRequest {
	return reqdto.CreatePitchRequest{
		Name:         p.Name,
		Image:        p.Image,
		Type:         p.Type,
		SizeHigh:     p.SizeHigh,
		SizeWidth:    p.SizeWidth,
		PriceFirst:   p.PriceFirst.String(),
		PriceSecond:  p.PriceSecond.String(),
		TimeInterval: p.TimeInterval.HHMM(),
	}
}

func (p *PitchBuilder) BuildView() *queries.PitchView {
	return &queries.PitchView{
		ID:           p.ID,
		ClubID:       p.ClubID,
		Name:         p.Name,
		ImageURL:     "https://cdn.example.com/" + p.Image,
		Type:         p.Type,
		SizeHigh:     p.SizeHigh,
		SizeWidth:    p.SizeWidth,
		IsActive:     p.IsActive,
		PriceFirst:   p.PriceFirst,
		PriceSecond:  p.PriceSecond,
		TimeInterval: p.TimeInterval,
	}
}
