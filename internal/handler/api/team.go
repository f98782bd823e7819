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

type TeamHandler struct {
	teams       commands.TeamCommands
	invitations commands.InvitationCommands
	q           queries.TeamQueries
}

func NewTeamHandler(teams commands.TeamCommands, invitations commands.InvitationCommands, q queries.TeamQueries) *TeamHandler {
	return &TeamHandler{teams: teams, invitations: invitations, q: q}
}

// @Summary List my teams
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TeamResponse
// @Router /api/teams [get]
func (h *TeamHandler) MyTeams(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	items, err := h.q.MyTeams(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTeamList(items))
}

// @Summary Create team
// @Description The caller becomes captain
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTeamRequest true "Team"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.teams.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Team detail
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} resdto.TeamDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/teams/{id} [get]
func (h *TeamHandler) Detail(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.Detail(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTeamDetail(detail))
}

// @Summary Update team
// @Description Captain only
// @Tags teams
// @Accept json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body reqdto.UpdateTeamRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/teams/{id} [patch]
func (h *TeamHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.teams.Update(c.Request.Context(), actor, id, req.ToDomain()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate team
// @Description Captain only
// @Tags teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/teams/{id} [delete]
func (h *TeamHandler) Deactivate(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.teams.Deactivate(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Invite player
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body reqdto.InviteRequest true "Invitee"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/teams/{id}/invitations [post]
func (h *TeamHandler) Invite(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.InviteRequest
	if !bindJSON(c, &req) {
		return
	}
	invID, err := h.invitations.Invite(c.Request.Context(), actor, id, req.Username)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: invID})
}

// @Summary Remove member
// @Description Captain only; the captain cannot remove themselves
// @Tags teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param player_id path string true "Player ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/teams/{id}/members/{player_id} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := uuidParam(c, "player_id")
	if !ok {
		return
	}
	if err := h.teams.RemoveMember(c.Request.Context(), actor, id, playerID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Leave team
// @Tags teams
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/teams/{id}/leave [post]
func (h *TeamHandler) Leave(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.teams.Leave(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary My pending invitations
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InvitationResponse
// @Router /api/invitations [get]
func (h *TeamHandler) MyInvitations(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	items, err := h.q.MyInvitations(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvitationList(items))
}

// @Summary Answer invitation
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/invitations/{id}/accept [post]
// @Router /api/invitations/{id}/reject [post]
func (h *TeamHandler) RespondInvitation(accept bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorOrAbort(c)
		if !ok {
			return
		}
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		if err := h.invitations.Respond(c.Request.Context(), actor, id, accept); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Search players
// @Description Case-insensitive username search, at most 10 results
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term"
// @Success 200 {array} resdto.UserSearchResponse
// @Router /api/users/search [get]
func (h *TeamHandler) SearchUsers(c *gin.Context) {
	var query reqdto.UserSearchQuery
	if !bindQuery(c, &query) {
		return
	}
	items, err := h.q.SearchUsers(c.Request.Context(), query.Q)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserSearch(items))
}
