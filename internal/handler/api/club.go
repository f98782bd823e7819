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

type ClubHandler struct {
	cmds    commands.ClubCommands
	q       queries.ClubQueries
	opening queries.OpeningPriceQueries
}

func NewClubHandler(cmds commands.ClubCommands, q queries.ClubQueries, opening queries.OpeningPriceQueries) *ClubHandler {
	return &ClubHandler{cmds: cmds, q: q, opening: opening}
}

// @Summary Get my club
// @Tags dashboard-club
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ClubResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/club [get]
func (h *ClubHandler) GetManaged(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.GetManaged(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClubView(view))
}

// @Summary Update my club
// @Description Partial update; close_time must stay after open_time
// @Tags dashboard-club
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateClubRequest true "Fields to change"
// @Success 200 {object} resdto.ClubResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/dashboard/club [patch]
func (h *ClubHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateClubRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := req.ToDomain()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, u); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetManaged(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClubView(view))
}

// @Summary List clubs
// @Description Active clubs, best rated first
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClubResponse
// @Router /api/clubs [get]
func (h *ClubHandler) ListActive(c *gin.Context) {
	items, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClubList(items))
}

// @Summary Opening prices for my club
// @Description Resolved hours and adjusted pitch prices for the next number_of_day days
// @Tags dashboard-club
// @Produce json
// @Security BearerAuth
// @Param number_of_day query int false "Days to resolve (1-60, default 7)"
// @Success 200 {array} resdto.OpeningDayResponse
// @Failure 400 {object} httperr.Response
// @Router /api/dashboard/opening-prices [get]
func (h *ClubHandler) ManagerOpeningPrices(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.OpeningPricesQuery
	if !bindQuery(c, &query) {
		return
	}
	days, err := h.opening.ForManager(c.Request.Context(), actor, query.NumberOfDay)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpeningDays(days))
}

// @Summary Opening prices of a club
// @Description Bookable days within the player booking window
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {array} resdto.OpeningDayResponse
// @Failure 404 {object} httperr.Response
// @Router /api/clubs/{id}/opening-prices [get]
func (h *ClubHandler) PlayerOpeningPrices(c *gin.Context) {
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	days, err := h.opening.ForPlayer(c.Request.Context(), clubID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpeningDays(days))
}
