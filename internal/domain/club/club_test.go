//go:build unit

package club_test

import (
	"testing"
	"time"

	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newClub(avg string, count int) *club.Club {
	return club.Reconstruct(club.Params{
		ID:          uuid.New(),
		ManagerID:   uuid.New(),
		Name:        "Green Field",
		OpenTime:    daytime.MustParse("08:00"),
		CloseTime:   daytime.MustParse("23:00"),
		RatingAvg:   decimal.RequireFromString(avg),
		RatingCount: count,
		IsActive:    true,
	})
}

func TestApplyRating(t *testing.T) {
	tests := []struct {
		name      string
		avg       string
		count     int
		rating    int
		wantAvg   string
		wantCount int
	}{
		{name: "success: running average", avg: "4.00", count: 3, rating: 5, wantAvg: "4.25", wantCount: 4},
		{name: "success: first review", avg: "0", count: 0, rating: 3, wantAvg: "3", wantCount: 1},
		{name: "success: rounds half up", avg: "4.00", count: 2, rating: 5, wantAvg: "4.33", wantCount: 3},
		{name: "success: rounds half up on the 5", avg: "3.25", count: 1, rating: 4, wantAvg: "3.63", wantCount: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClub(tt.avg, tt.count)
			require.NoError(t, c.ApplyRating(tt.rating, now))
			assert.True(t, decimal.RequireFromString(tt.wantAvg).Equal(c.RatingAvg()), "got %s", c.RatingAvg())
			assert.Equal(t, tt.wantCount, c.RatingCount())
		})
	}

	t.Run("error: rating out of range", func(t *testing.T) {
		c := newClub("4.00", 3)
		require.ErrorIs(t, c.ApplyRating(6, now), club.ErrInvalidRating)
		assert.Equal(t, 3, c.RatingCount())
	})
}

func TestWorkingDays(t *testing.T) {
	full := map[string]bool{"0": true, "1": true, "2": false, "3": true, "4": true, "5": true, "6": false}

	t.Run("success: exact keys", func(t *testing.T) {
		wd, err := club.ParseWorkingDays(full)
		require.NoError(t, err)
		assert.True(t, wd.IsOpen(0))
		assert.False(t, wd.IsOpen(2))
		assert.False(t, wd.IsOpen(7))
		assert.Equal(t, full, wd.Map())
	})

	t.Run("error: missing key", func(t *testing.T) {
		m := map[string]bool{"0": true, "1": true, "2": true, "3": true, "4": true, "5": true}
		_, err := club.ParseWorkingDays(m)
		require.ErrorIs(t, err, club.ErrInvalidWorkingDays)
	})

	t.Run("error: unknown key", func(t *testing.T) {
		m := map[string]bool{"0": true, "1": true, "2": true, "3": true, "4": true, "5": true, "7": true}
		_, err := club.ParseWorkingDays(m)
		require.ErrorIs(t, err, club.ErrInvalidWorkingDays)
	})
}

func TestApply(t *testing.T) {
	t.Run("success: partial update", func(t *testing.T) {
		c := newClub("0", 0)
		require.NoError(t, c.Apply(club.Update{Name: ptr.Of("  Blue Field "), CloseTime: ptr.Of(daytime.MustParse("22:00"))}, now))
		assert.Equal(t, "Blue Field", c.Name())
		assert.Equal(t, "22:00:00", c.CloseTime().String())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("error: close before open leaves club untouched", func(t *testing.T) {
		c := newClub("0", 0)
		err := c.Apply(club.Update{Name: ptr.Of("Other"), CloseTime: ptr.Of(daytime.MustParse("07:00"))}, now)
		require.ErrorIs(t, err, club.ErrInvalidHours)
		assert.Equal(t, "Green Field", c.Name())
	})

	t.Run("error: empty name", func(t *testing.T) {
		c := newClub("0", 0)
		require.ErrorIs(t, c.Apply(club.Update{Name: ptr.Of("   ")}, now), club.ErrEmptyName)
	})
}
