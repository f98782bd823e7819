//go:build unit

package user_test

import (
	"strings"
	"testing"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"player", "manager"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := user.NewRole("admin")
	require.ErrorIs(t, err, user.ErrInvalidRole)
	assert.True(t, errs.IsValidation(err))
}

func TestActor_ManagedClub(t *testing.T) {
	clubID := uuid.New()

	t.Run("success: manager with club", func(t *testing.T) {
		got, err := user.NewManager(uuid.New(), clubID).ManagedClub()
		require.NoError(t, err)
		assert.Equal(t, clubID, got)
	})

	t.Run("error: player is not a manager", func(t *testing.T) {
		_, err := user.NewPlayer(uuid.New()).ManagedClub()
		require.ErrorIs(t, err, user.ErrNotManager)
		assert.True(t, errs.IsPermission(err))
	})

	t.Run("error: manager without club", func(t *testing.T) {
		_, err := user.Actor{UserID: uuid.New(), Role: user.RoleManager}.ManagedClub()
		require.ErrorIs(t, err, user.ErrNoClubForKey)
	})
}

func TestNewUsername(t *testing.T) {
	u, err := user.NewUsername("  striker9 ")
	require.NoError(t, err)
	assert.Equal(t, "striker9", u.String())

	_, err = user.NewUsername("   ")
	require.ErrorIs(t, err, user.ErrEmptyUsername)

	_, err = user.NewUsername(strings.Repeat("a", user.MaxUsernameLength+1))
	require.ErrorIs(t, err, user.ErrUsernameTooLong)
}
