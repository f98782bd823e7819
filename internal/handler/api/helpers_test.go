//go:build unit

package api_test

import (
	"net/http"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: any Authorization header
// authenticates as the given actor.
func fakeAuth(actor user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, actor)
		c.Next()
	}
}
