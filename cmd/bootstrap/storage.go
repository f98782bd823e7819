package bootstrap

import (
	"log/slog"

	"pitch-booking/internal/infra/storage"
	"pitch-booking/internal/pkg/config"
	"pitch-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewMediaResolver,
			fx.As(new(queries.MediaResolver)),
		),
	),
)

func NewMediaResolver(cfg config.Config, logger *slog.Logger) (*storage.MediaResolver, error) {
	return storage.NewMediaResolver(cfg.Storage, logger)
}
