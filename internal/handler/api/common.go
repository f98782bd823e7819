package api

import (
	"context"
	"net/http"

	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/handler/httperr"
	"pitch-booking/internal/handler/middleware"
	"pitch-booking/internal/pkg/errs"
	"pitch-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("no authenticated actor in context")

// actorOrAbort must run behind RequireAuth; a missing actor is a wiring bug.
func actorOrAbort(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
	}
	return actor, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.BadRequest(c, err)
		return false
	}
	return true
}

type bookingTransition func(ctx context.Context, actor user.Actor, id uuid.UUID) (*commands.BookingResult, error)
