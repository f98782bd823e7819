package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/handler/httperr"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = errs.New("access token required")
	errBadClaims    = errs.New("token carries an unknown role")
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxActorKey = "actor"
	claimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Unauthorized(c, errMissingToken)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Unauthorized(c, err)
			return
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			httperr.Unauthorized(c, err)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Set(claimsKey, map[string]any{
			"user_id": actor.UserID.String(),
			"role":    actor.Role.String(),
		})
		c.Next()
	}
}

// RequireManager must run after RequireAuth. Managers without a club in
// their token are rejected as well.
func (m *AuthMiddleware) RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingToken, "Internal server error", nil)
			return
		}
		if _, err := actor.ManagedClub(); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok
}

// SetActor is used by handler tests that bypass token parsing.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func actorFromClaims(claims *jwt.Claims) (user.Actor, error) {
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.Wrap(errBadClaims, claims.Role)
	}
	return user.Actor{UserID: claims.UserID, Role: role, ClubID: claims.ClubID}, nil
}
