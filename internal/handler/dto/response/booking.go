package response

import (
	"kayak-console/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BookingCreatedResponse struct {
	BookingID uuid.UUID       `json:"booking_id"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

func FromCreateBookingResult(result *commands.CreateBookingResult) BookingCreatedResponse {
	var resp BookingCreatedResponse
	_ = copier.Copy(&resp, result)
	return resp
}

type RefundRequestedResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	// Queued is true when the booking had no online checkout and the refund
	// went onto the manual queue instead of the payment provider.
	Queued bool `json:"queued"`
}
