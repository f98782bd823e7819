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

type PlayerBookingHandler struct {
	cmds commands.PlayerBookingCommands
	q    queries.BookingQueries
}

func NewPlayerBookingHandler(cmds commands.PlayerBookingCommands, q queries.BookingQueries) *PlayerBookingHandler {
	return &PlayerBookingHandler{cmds: cmds, q: q}
}

// @Summary List my bookings
// @Description Caller's bookings, newest first, with keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.BookingResponse]
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *PlayerBookingHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if !bindQuery(c, &page) {
		return
	}
	items, next, err := h.q.ListForPlayer(c.Request.Context(), actor, page.Cursor(), page.PageLimit())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromBookingList(items), next))
}

// @Summary Book a pitch
// @Description Request a slot; the club manager confirms it later
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePlayerBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings [post]
func (h *PlayerBookingHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreatePlayerBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(res))
}

// @Summary Cancel my booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *PlayerBookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary Accept reschedule proposal
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/reschedule/accept [post]
func (h *PlayerBookingHandler) AcceptReschedule(c *gin.Context) {
	h.transition(c, h.cmds.AcceptReschedule)
}

// @Summary Decline reschedule proposal
// @Description Declining rejects the booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/reschedule/reject [post]
func (h *PlayerBookingHandler) DeclineReschedule(c *gin.Context) {
	h.transition(c, h.cmds.DeclineReschedule)
}

func (h *PlayerBookingHandler) transition(c *gin.Context, fn bookingTransition) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	res, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(res))
}
