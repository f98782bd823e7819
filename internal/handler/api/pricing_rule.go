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

type PricingRuleHandler struct {
	cmds commands.PricingRuleCommands
	q    queries.ClubQueries
}

func NewPricingRuleHandler(cmds commands.PricingRuleCommands, q queries.ClubQueries) *PricingRuleHandler {
	return &PricingRuleHandler{cmds: cmds, q: q}
}

// @Summary List pricing rules
// @Description Weekly rules and date rules from today on
// @Tags dashboard-pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PricingRuleResponse
// @Router /api/dashboard/pricing-rules [get]
func (h *PricingRuleHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	items, err := h.q.ListPricingRules(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingRuleList(items))
}

// @Summary Create pricing rule
// @Tags dashboard-pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePricingRuleRequest true "Rule"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/dashboard/pricing-rules [post]
func (h *PricingRuleHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreatePricingRuleRequest
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

// @Summary Update pricing rule
// @Tags dashboard-pricing
// @Accept json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpdatePricingRuleRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/pricing-rules/{id} [patch]
func (h *PricingRuleHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePricingRuleRequest
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

// @Summary Delete pricing rule
// @Tags dashboard-pricing
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/pricing-rules/{id} [delete]
func (h *PricingRuleHandler) Delete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
