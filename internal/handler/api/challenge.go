package api

import (
	"net/http"

	reqdto "pitch-booking/internal/handler/dto/request"
	resdto "pitch-booking/internal/handler/dto/response"
	"pitch-booking/internal/handler/httperr"
	"pitch-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	cmds commands.ChallengeCommands
}

func NewChallengeHandler(cmds commands.ChallengeCommands) *ChallengeHandler {
	return &ChallengeHandler{cmds: cmds}
}

// @Summary Challenge a team
// @Description Captain of an active team challenges a team in challenge mode
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateChallengeRequest true "Challenge"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/challenges [post]
func (h *ChallengeHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateChallengeRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Answer challenge
// @Tags challenges
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/challenges/{id}/accept [post]
// @Router /api/challenges/{id}/reject [post]
func (h *ChallengeHandler) Respond(accept bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorOrAbort(c)
		if !ok {
			return
		}
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		if err := h.cmds.Respond(c.Request.Context(), actor, id, accept); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Cancel challenge
// @Tags challenges
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/challenges/{id}/cancel [post]
func (h *ChallengeHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record challenge result
// @Description Either captain, once, for accepted challenges
// @Tags challenges
// @Accept json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Param request body reqdto.ChallengeResultRequest true "Score"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/challenges/{id}/result [post]
func (h *ChallengeHandler) RecordResult(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChallengeResultRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.RecordResult(c.Request.Context(), actor, id, *req.TeamGoals, *req.ChallengedGoals); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
