package components

import (
	"kayak-console/internal/pkg/clock"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewDashboardQueries,
		queries.NewSlotQueries,
		queries.NewInvoiceQueries,
		queries.NewRefundQueries,
		queries.NewBroadcastQueries,
		queries.NewVoucherQueries,
		queries.NewPhotoQueries,
		queries.NewPricingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewSlotCommands,
		commands.NewInvoiceCommands,
		commands.NewRefundCommands,
		commands.NewBroadcastCommands,
		commands.NewPhotoCommands,
		commands.NewPricingCommands,
	),
)
