package components

import (
	"pitch-booking/internal/handler"
	"pitch-booking/internal/handler/api"
	"pitch-booking/internal/handler/middleware"
	"pitch-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewClubHandler,
		api.NewPitchHandler,
		api.NewPricingRuleHandler,
		api.NewOwnerBookingHandler,
		api.NewPlayerBookingHandler,
		api.NewReviewHandler,
		api.NewNotificationHandler,
		api.NewTeamHandler,
		api.NewChallengeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine        *gin.Engine
	Config        config.Config
	Auth          *middleware.AuthMiddleware
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

func registerRoutes(p routerParams) {
	handler.NewRouter(p.Engine, p.Config, handler.Handlers{
		Club:          p.Club,
		Pitch:         p.Pitch,
		PricingRule:   p.PricingRule,
		OwnerBooking:  p.OwnerBooking,
		PlayerBooking: p.PlayerBooking,
		Review:        p.Review,
		Notification:  p.Notification,
		Team:          p.Team,
		Challenge:     p.Challenge,
	}, p.Auth)
}
