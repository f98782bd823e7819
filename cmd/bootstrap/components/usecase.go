package components

import (
	"pitch-booking/internal/domain/team"
	"pitch-booking/internal/pkg/clock"
	"pitch-booking/internal/pkg/config"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCommandSettings,
	NewQuerySettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOwnerBookingUseCase,
		commands.NewPlayerBookingUseCase,
		commands.NewClubUseCase,
		commands.NewPitchUseCase,
		commands.NewPricingRuleUseCase,
		commands.NewReviewUseCase,
		commands.NewNotificationUseCase,
		commands.NewTeamUseCase,
		commands.NewInvitationUseCase,
		commands.NewChallengeUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewClubQueries,
		queries.NewOpeningPriceQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewNotificationQueries,
		queries.NewTeamQueries,
	),
)

func NewCommandSettings(cfg config.Config) commands.Settings {
	return commands.Settings{
		Location:          cfg.Booking.Location(),
		PlayerOpeningDays: cfg.Booking.PlayerOpeningDays,
		Limits: team.Limits{
			MaxTeams:   cfg.Booking.MaxTeams,
			MaxMembers: cfg.Booking.MaxTeamMembers,
		},
	}
}

func NewQuerySettings(cfg config.Config) queries.Settings {
	return queries.Settings{
		Location:          cfg.Booking.Location(),
		PlayerOpeningDays: cfg.Booking.PlayerOpeningDays,
		OwnerOpeningDays:  cfg.Booking.OwnerOpeningDays,
	}
}
