package api

import (
	"net/http"

	"pitch-booking/internal/domain/booking"
	reqdto "pitch-booking/internal/handler/dto/request"
	resdto "pitch-booking/internal/handler/dto/response"
	"pitch-booking/internal/handler/httperr"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OwnerBookingHandler struct {
	cmds commands.OwnerBookingCommands
	q    queries.BookingQueries
}

func NewOwnerBookingHandler(cmds commands.OwnerBookingCommands, q queries.BookingQueries) *OwnerBookingHandler {
	return &OwnerBookingHandler{cmds: cmds, q: q}
}

// @Summary List club bookings
// @Description Bookings of the manager's club, optionally narrowed to one pitch, one date and a time window
// @Tags dashboard-bookings
// @Produce json
// @Security BearerAuth
// @Param pitch query string false "Pitch ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param time_from query string false "Window start (HH:MM)"
// @Param time_to query string false "Window end (HH:MM)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/dashboard/bookings [get]
func (h *OwnerBookingHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.OwnerBookingQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	items, err := h.q.ListForOwner(c.Request.Context(), actor, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Create booking as owner
// @Description Record a booking on one of the club's pitches, optionally for a registered player
// @Tags dashboard-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOwnerBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/bookings [post]
func (h *OwnerBookingHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateOwnerBookingRequest
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

// @Summary Get club booking
// @Description Booking detail with status history and any pending reschedule proposal
// @Tags dashboard-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/bookings/{id} [get]
func (h *OwnerBookingHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.GetForOwner(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetail(detail))
}

// @Summary Apply booking action
// @Description One of confirm-payment, reject, complete, cancel, dispute, no-show, expire
// @Tags dashboard-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param action path string true "Action"
// @Success 200 {object} resdto.BookingStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/bookings/{id}/{action} [post]
func (h *OwnerBookingHandler) Action(action booking.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorOrAbort(c)
		if !ok {
			return
		}
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		res, err := h.cmds.ApplyAction(c.Request.Context(), actor, id, action)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromBookingResult(res))
	}
}

// @Summary Propose reschedule
// @Description Offer the player a new slot; the booking waits for the player's answer
// @Tags dashboard-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleRequest true "Proposed slot"
// @Success 200 {object} resdto.BookingStateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dashboard/bookings/{id}/reschedule [post]
func (h *OwnerBookingHandler) Reschedule(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RescheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	res, err := h.cmds.ProposeReschedule(c.Request.Context(), actor, id, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(res))
}
