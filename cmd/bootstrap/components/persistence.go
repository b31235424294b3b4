package components

import (
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/readstore"
	"kayak-console/internal/infra/writerepo"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(NewDBTX),
	readstoreModule,
	writerepoModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.RefundReadStore)),
			fx.As(new(queries.BroadcastTargetStore)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewTourReadStore,
			fx.As(new(queries.TourReadStore)),
			fx.As(new(commands.TourReader)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		fx.Annotate(
			readstore.NewBroadcastReadStore,
			fx.As(new(queries.BroadcastReadStore)),
		),
		fx.Annotate(
			readstore.NewPhotoReadStore,
			fx.As(new(queries.PhotoReadStore)),
		),
		fx.Annotate(
			readstore.NewAlertReadStore,
			fx.As(new(queries.AlertReadStore)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingWriteRepository)),
		),
		fx.Annotate(
			writerepo.NewSlotRepository,
			fx.As(new(commands.SlotWriteRepository)),
		),
		fx.Annotate(
			writerepo.NewTourRepository,
			fx.As(new(commands.TourWriteRepository)),
		),
		fx.Annotate(
			writerepo.NewBroadcastRepository,
			fx.As(new(commands.BroadcastWriteRepository)),
		),
		fx.Annotate(
			writerepo.NewPhotoRepository,
			fx.As(new(commands.PhotoWriteRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
