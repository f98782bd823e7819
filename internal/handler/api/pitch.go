package api

import (
	"net/http"

	reqdto "pitch-booking/internal/handler/dto/request"
	resdto "pitch-booking/internal/handler/dto/response"
	"pitch-booking/internal/handler/httperr"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PitchHandler struct {
	cmds commands.PitchCommands
	q    queries.ClubQueries
}

func NewPitchHandler(cmds commands.PitchCommands, q queries.ClubQueries) *PitchHandler {
	return &PitchHandler{cmds: cmds, q: q}
}

// @Summary List my pitches
// @Tags dashboard-pitches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PitchResponse
// @Router /api/dashboard/pitches [get]
func (h *PitchHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	items, err := h.q.ListPitches(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPitchList(items))
}

// @Summary Create pitch
// @Tags dashboard-pitches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePitchRequest true "Pitch"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/dashboard/pitches [post]
func (h *PitchHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreatePitchRequest
	if !bindJSON(c, &req) {
		return
	}
	params, err := req.ToDomain()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), actor, params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update pitch
// @Tags dashboard-pitches
// @Accept json
// @Security BearerAuth
// @Param id path string true "Pitch ID"
// @Param request body reqdto.UpdatePitchRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/pitches/{id} [patch]
func (h *PitchHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePitchRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := req.ToDomain()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, id, u); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Activate or deactivate pitch
// @Tags dashboard-pitches
// @Accept json
// @Security BearerAuth
// @Param id path string true "Pitch ID"
// @Param request body reqdto.SetActiveRequest true "Active flag"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/pitches/{id}/active [patch]
func (h *PitchHandler) SetActive(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.SetActive(c.Request.Context(), actor, id, *req.IsActive); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
