package bootstrap

import (
	"context"
	"log/slog"

	"pitch-booking/internal/infra/mq"
	"pitch-booking/internal/pkg/config"
	"pitch-booking/internal/usecase/events"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		events.NewDefaultDispatcher,
		NewPublisher,
		events.NewRunner,
	),
)

// NewPublisher connects to RabbitMQ when AMQP_URL is set and falls back to a
// no-op publisher otherwise.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (events.Publisher, error) {
	if cfg.Events.AMQPURL == "" {
		logger.Info("Event broker disabled: AMQP_URL not set")
		return events.NopPublisher{}, nil
	}

	pub, err := mq.NewPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
