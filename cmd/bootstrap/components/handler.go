package components

import (
	"kayak-console/internal/handler"
	"kayak-console/internal/handler/api"
	"kayak-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewDashboardHandler,
		api.NewSlotHandler,
		api.NewInvoiceHandler,
		api.NewRefundHandler,
		api.NewBroadcastHandler,
		api.NewVoucherHandler,
		api.NewPricingHandler,
		api.NewPhotoHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	dashboard *api.DashboardHandler,
	slot *api.SlotHandler,
	invoice *api.InvoiceHandler,
	refund *api.RefundHandler,
	broadcast *api.BroadcastHandler,
	voucher *api.VoucherHandler,
	pricing *api.PricingHandler,
	photo *api.PhotoHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Booking:   booking,
		Dashboard: dashboard,
		Slot:      slot,
		Invoice:   invoice,
		Refund:    refund,
		Broadcast: broadcast,
		Voucher:   voucher,
		Pricing:   pricing,
		Photo:     photo,
	}
}
