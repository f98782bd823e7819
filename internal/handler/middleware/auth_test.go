//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/handler/middleware"
	"pitch-booking/internal/pkg/jwt"
	"pitch-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	svc    *jwt.Service
	seen   user.Actor
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.svc = jwt.NewService("test-secret", time.Hour)
	s.seen = user.Actor{}

	auth := middleware.NewAuthMiddleware(s.svc)
	capture := func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		s.seen = actor
		c.Status(http.StatusNoContent)
	}
	s.router.GET("/any", auth.RequireAuth(), capture)
	s.router.GET("/dashboard", auth.RequireAuth(), auth.RequireManager(), capture)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(userID uuid.UUID, role user.Role, clubID *uuid.UUID) string {
	token, err := s.svc.GenerateToken(userID, role, clubID)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: player claims become the actor", func() {
		userID := uuid.New()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, s.token(userID, user.RolePlayer, nil))

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(userID, s.seen.UserID)
		s.Equal(user.RolePlayer, s.seen.Role)
		s.Nil(s.seen.ClubID)
	})

	s.Run("success: manager claims keep the club", func() {
		clubID := uuid.New()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, s.token(uuid.New(), user.RoleManager, &clubID))

		s.Equal(http.StatusNoContent, rec.Code)
		s.Require().NotNil(s.seen.ClubID)
		s.Equal(clubID, *s.seen.ClubID)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 401 Unauthorized for a token signed elsewhere", func() {
		other, err := jwt.NewService("other-secret", time.Hour).GenerateToken(uuid.New(), user.RolePlayer, nil)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, other)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 401 Unauthorized for an expired token", func() {
		expired, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(uuid.New(), user.RolePlayer, nil)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireManager() {
	s.Run("success: manager with a club passes", func() {
		clubID := uuid.New()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, s.token(uuid.New(), user.RoleManager, &clubID))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for a player", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, s.token(uuid.New(), user.RolePlayer, nil))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only club managers")
	})

	s.Run("error: 403 Forbidden for a manager token without a club", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil, s.token(uuid.New(), user.RoleManager, nil))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "no club")
	})
}
