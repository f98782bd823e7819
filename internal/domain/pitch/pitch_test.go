//go:build unit

package pitch_test

import (
	"testing"
	"time"

	"pitch-booking/internal/domain/pitch"
	"pitch-booking/internal/domain/pricing"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func params() pitch.Params {
	return pitch.Params{
		ClubID:    uuid.New(),
		Name:      " Pitch A ",
		Type:      "grass",
		SizeHigh:  40,
		SizeWidth: 20,
		IsActive:  true,
		Rates: pricing.Rates{
			PriceFirst:  decimal.NewFromInt(100),
			PriceSecond: decimal.NewFromInt(150),
			Cutoff:      daytime.MustParse("18:00"),
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("success: trims name", func(t *testing.T) {
		p, err := pitch.New(params(), now)
		require.NoError(t, err)
		assert.Equal(t, "Pitch A", p.Name())
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.True(t, decimal.RequireFromString("250").Equal(p.Price(decimal.NewFromInt(1), daytime.MustParse("17:00"), daytime.MustParse("19:00"))))
	})

	t.Run("error: blank name", func(t *testing.T) {
		pp := params()
		pp.Name = "  "
		_, err := pitch.New(pp, now)
		require.ErrorIs(t, err, pitch.ErrEmptyName)
	})

	t.Run("error: negative price", func(t *testing.T) {
		pp := params()
		pp.Rates.PriceSecond = decimal.NewFromInt(-5)
		_, err := pitch.New(pp, now)
		require.ErrorIs(t, err, pricing.ErrNegativeRate)
	})
}

func TestApply(t *testing.T) {
	t.Run("success: updates rates", func(t *testing.T) {
		p, err := pitch.New(params(), now)
		require.NoError(t, err)
		later := now.Add(time.Hour)
		require.NoError(t, p.Apply(pitch.Update{PriceFirst: ptr.Of(decimal.NewFromInt(80))}, later))
		assert.True(t, decimal.NewFromInt(80).Equal(p.Rates().PriceFirst))
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("error: invalid size keeps old values", func(t *testing.T) {
		p, err := pitch.New(params(), now)
		require.NoError(t, err)
		require.ErrorIs(t, p.Apply(pitch.Update{SizeWidth: ptr.Of(0), Name: ptr.Of("B")}, now), pitch.ErrInvalidSize)
		assert.Equal(t, "Pitch A", p.Name())
	})

	t.Run("success: toggle active", func(t *testing.T) {
		p, err := pitch.New(params(), now)
		require.NoError(t, err)
		p.SetActive(false, now)
		assert.False(t, p.IsActive())
	})
}
