package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/handler/api"
	reqdto "pitch-booking/internal/handler/dto/request"
	"pitch-booking/internal/handler/middleware"
	"pitch-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Club          *api.ClubHandler
	Pitch         *api.PitchHandler
	PricingRule   *api.PricingRuleHandler
	OwnerBooking  *api.OwnerBookingHandler
	PlayerBooking *api.PlayerBookingHandler
	Review        *api.ReviewHandler
	Notification  *api.NotificationHandler
	Team          *api.TeamHandler
	Challenge     *api.ChallengeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	reqdto.RegisterValidators()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Tracing())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())

	dashboard := apiGroup.Group("/dashboard")
	dashboard.Use(authMiddleware.RequireManager())
	{
		addRoutes(dashboard, []route{
			{Method: http.MethodGet, Path: "/club", Handler: h.Club.GetManaged},
			{Method: http.MethodPatch, Path: "/club", Handler: h.Club.Update},
			{Method: http.MethodGet, Path: "/opening-prices", Handler: h.Club.ManagerOpeningPrices},

			{Method: http.MethodGet, Path: "/pitches", Handler: h.Pitch.List},
			{Method: http.MethodPost, Path: "/pitches", Handler: h.Pitch.Create},
			{Method: http.MethodPatch, Path: "/pitches/:id", Handler: h.Pitch.Update},
			{Method: http.MethodPatch, Path: "/pitches/:id/active", Handler: h.Pitch.SetActive},

			{Method: http.MethodGet, Path: "/pricing-rules", Handler: h.PricingRule.List},
			{Method: http.MethodPost, Path: "/pricing-rules", Handler: h.PricingRule.Create},
			{Method: http.MethodPatch, Path: "/pricing-rules/:id", Handler: h.PricingRule.Update},
			{Method: http.MethodDelete, Path: "/pricing-rules/:id", Handler: h.PricingRule.Delete},

			{Method: http.MethodGet, Path: "/bookings", Handler: h.OwnerBooking.List},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.OwnerBooking.Create},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.OwnerBooking.Get},
			{Method: http.MethodPost, Path: "/bookings/:id/reschedule", Handler: h.OwnerBooking.Reschedule},
		})
		addRoutes(dashboard, ownerActionRoutes(h.OwnerBooking))
	}

	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/clubs", Handler: h.Club.ListActive},
		{Method: http.MethodGet, Path: "/clubs/:id/opening-prices", Handler: h.Club.PlayerOpeningPrices},
		{Method: http.MethodGet, Path: "/clubs/:id/reviews", Handler: h.Review.ListByClub},

		{Method: http.MethodGet, Path: "/bookings", Handler: h.PlayerBooking.List},
		{Method: http.MethodPost, Path: "/bookings", Handler: h.PlayerBooking.Create},
		{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.PlayerBooking.Cancel},
		{Method: http.MethodPost, Path: "/bookings/:id/reschedule/accept", Handler: h.PlayerBooking.AcceptReschedule},
		{Method: http.MethodPost, Path: "/bookings/:id/reschedule/reject", Handler: h.PlayerBooking.DeclineReschedule},

		{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create},

		{Method: http.MethodGet, Path: "/notifications", Handler: h.Notification.List},
		{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: h.Notification.MarkRead},

		{Method: http.MethodGet, Path: "/teams", Handler: h.Team.MyTeams},
		{Method: http.MethodPost, Path: "/teams", Handler: h.Team.Create},
		{Method: http.MethodGet, Path: "/teams/:id", Handler: h.Team.Detail},
		{Method: http.MethodPatch, Path: "/teams/:id", Handler: h.Team.Update},
		{Method: http.MethodDelete, Path: "/teams/:id", Handler: h.Team.Deactivate},
		{Method: http.MethodPost, Path: "/teams/:id/invitations", Handler: h.Team.Invite},
		{Method: http.MethodDelete, Path: "/teams/:id/members/:player_id", Handler: h.Team.RemoveMember},
		{Method: http.MethodPost, Path: "/teams/:id/leave", Handler: h.Team.Leave},

		{Method: http.MethodGet, Path: "/invitations", Handler: h.Team.MyInvitations},
		{Method: http.MethodPost, Path: "/invitations/:id/accept", Handler: h.Team.RespondInvitation(true)},
		{Method: http.MethodPost, Path: "/invitations/:id/reject", Handler: h.Team.RespondInvitation(false)},

		{Method: http.MethodGet, Path: "/users/search", Handler: h.Team.SearchUsers},

		{Method: http.MethodPost, Path: "/challenges", Handler: h.Challenge.Create},
		{Method: http.MethodPost, Path: "/challenges/:id/accept", Handler: h.Challenge.Respond(true)},
		{Method: http.MethodPost, Path: "/challenges/:id/reject", Handler: h.Challenge.Respond(false)},
		{Method: http.MethodPost, Path: "/challenges/:id/cancel", Handler: h.Challenge.Cancel},
		{Method: http.MethodPost, Path: "/challenges/:id/result", Handler: h.Challenge.RecordResult},
	})
}

// One static route per owner action so unknown actions fall through to 404.
func ownerActionRoutes(h *api.OwnerBookingHandler) []route {
	actions := booking.OwnerActions()
	rs := make([]route, 0, len(actions))
	for _, a := range actions {
		rs = append(rs, route{Method: http.MethodPost, Path: "/bookings/:id/" + string(a), Handler: h.Action(a)})
	}
	return rs
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
