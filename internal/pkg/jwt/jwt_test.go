//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	userID := uuid.New()
	clubID := uuid.New()

	t.Run("success: manager token keeps club id", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleManager, &clubID)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "manager", claims.Role)
		require.NotNil(t, claims.ClubID)
		assert.Equal(t, clubID, *claims.ClubID)
	})

	t.Run("success: player token has no club", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RolePlayer, nil)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Nil(t, claims.ClubID)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(userID, user.RolePlayer, nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: expired", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(userID, user.RolePlayer, nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
