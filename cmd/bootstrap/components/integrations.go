package components

import (
	"log/slog"

	"kayak-console/internal/integrations/functions"
	"kayak-console/internal/pkg/config"
	"kayak-console/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var IntegrationsModule = fx.Module("integrations",
	fx.Provide(
		fx.Annotate(
			NewFunctionsClient,
			fx.As(new(commands.BookingNotifier)),
			fx.As(new(commands.BroadcastSender)),
			fx.As(new(commands.PhotoSender)),
		),
		NewPrometheusRegistry,
	),
)

func NewFunctionsClient(cfg config.Config, logger *slog.Logger) *functions.Client {
	return functions.NewClient(cfg.Functions, logger)
}

func NewPrometheusRegistry() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
