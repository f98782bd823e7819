//go:build unit

package challenge_test

import (
	"testing"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/challenge"
	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	home, away               *team.Team
	homeCaptain, awayCaptain uuid.UUID
	slot                     booking.Slot
}

func setup(t *testing.T) fixture {
	t.Helper()
	f := fixture{homeCaptain: uuid.New(), awayCaptain: uuid.New()}
	var err error
	f.home, _, err = team.New(f.homeCaptain, "Home", "", "", "", now)
	require.NoError(t, err)
	f.away, _, err = team.New(f.awayCaptain, "Away", "", "", "", now)
	require.NoError(t, err)
	require.NoError(t, f.away.Apply(f.awayCaptain, team.Update{ChallengeMode: ptr.Of(true)}, now))
	f.slot, err = booking.NewSlot(daytime.MustParseDate("2025-03-05"), daytime.MustParse("20:00"), daytime.MustParse("21:00"))
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	t.Run("success: pending challenge", func(t *testing.T) {
		f := setup(t)
		c, err := challenge.New(f.home, f.away, f.homeCaptain, uuid.New(), f.slot, now)
		require.NoError(t, err)
		assert.Equal(t, challenge.StatusPending, c.Status())
		assert.Equal(t, f.homeCaptain, c.CreatedBy())
	})

	t.Run("error: challenge mode off", func(t *testing.T) {
		f := setup(t)
		_, err := challenge.New(f.away, f.home, f.awayCaptain, uuid.New(), f.slot, now)
		require.ErrorIs(t, err, challenge.ErrChallengesDisabled)
	})

	t.Run("error: same team", func(t *testing.T) {
		f := setup(t)
		_, err := challenge.New(f.away, f.away, f.awayCaptain, uuid.New(), f.slot, now)
		require.ErrorIs(t, err, challenge.ErrSameTeam)
	})

	t.Run("error: not captain", func(t *testing.T) {
		f := setup(t)
		_, err := challenge.New(f.home, f.away, f.awayCaptain, uuid.New(), f.slot, now)
		require.ErrorIs(t, err, team.ErrNotCaptain)
	})
}

func TestLifecycle(t *testing.T) {
	t.Run("success: accept and record result", func(t *testing.T) {
		f := setup(t)
		c, err := challenge.New(f.home, f.away, f.homeCaptain, uuid.New(), f.slot, now)
		require.NoError(t, err)

		require.ErrorIs(t, c.Respond(f.away, f.homeCaptain, true, now), team.ErrNotCaptain)
		require.NoError(t, c.Respond(f.away, f.awayCaptain, true, now))
		require.ErrorIs(t, c.Respond(f.away, f.awayCaptain, false, now), challenge.ErrNotPending)

		require.NoError(t, c.RecordResult(f.home, f.away, f.awayCaptain, 2, 0, now))
		assert.Equal(t, 2, *c.ResultTeam())
		assert.Equal(t, 1, f.home.Stats().Wins)
		assert.Equal(t, 1, f.home.Stats().CleanSheets)
		assert.Equal(t, 1, f.away.Stats().Losses)
		assert.Equal(t, 1, f.away.Stats().FailedToScore)

		require.ErrorIs(t, c.RecordResult(f.home, f.away, f.homeCaptain, 1, 1, now), challenge.ErrResultRecorded)
	})

	t.Run("error: result on pending challenge", func(t *testing.T) {
		f := setup(t)
		c, err := challenge.New(f.home, f.away, f.homeCaptain, uuid.New(), f.slot, now)
		require.NoError(t, err)
		require.ErrorIs(t, c.RecordResult(f.home, f.away, f.homeCaptain, 1, 0, now), challenge.ErrNotAccepted)
		require.ErrorIs(t, c.RecordResult(f.home, f.away, uuid.New(), 1, 0, now), challenge.ErrNotParticipant)
	})

	t.Run("success: cancel accepted counts for both teams", func(t *testing.T) {
		f := setup(t)
		c, err := challenge.New(f.home, f.away, f.homeCaptain, uuid.New(), f.slot, now)
		require.NoError(t, err)
		require.NoError(t, c.Respond(f.away, f.awayCaptain, true, now))

		require.ErrorIs(t, c.Cancel(f.home, f.away, f.awayCaptain, now), team.ErrNotCaptain)
		require.NoError(t, c.Cancel(f.home, f.away, f.homeCaptain, now))
		assert.Equal(t, challenge.StatusCanceled, c.Status())
		assert.Equal(t, 1, f.home.Stats().Canceled)
		assert.Equal(t, 1, f.away.Stats().Canceled)

		require.ErrorIs(t, c.Cancel(f.home, f.away, f.homeCaptain, now), challenge.ErrNotCancelable)
	})
}
