//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/pkg/config"
	"pitch-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role, clubID *uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role, clubID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) PlayerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, userID, user.RolePlayer, nil)
}

func (h *JWTHelper) ManagerToken(t *testing.T, userID, clubID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, userID, user.RoleManager, &clubID)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(userID, role, nil)
	require.NoError(t, err)
	return token
}
