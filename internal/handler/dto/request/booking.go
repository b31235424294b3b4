package request

import (
	"kayak-console/internal/domain/booking"
	"kayak-console/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	SlotID          uuid.UUID `json:"slot_id" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email" binding:"omitempty,email"`
	Adults          int       `json:"adults" binding:"min=0"`
	Children        int       `json:"children" binding:"min=0"`
	Notes           *string   `json:"notes"`
	SendPaymentLink bool      `json:"send_payment_link"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		SlotID:          r.SlotID,
		CustomerName:    r.CustomerName,
		Phone:           r.Phone,
		Email:           r.Email,
		Adults:          r.Adults,
		Children:        r.Children,
		Notes:           r.Notes,
		SendPaymentLink: r.SendPaymentLink,
	}
}

type EditBookingRequest struct {
	CustomerName *string          `json:"customer_name"`
	Phone        *string          `json:"phone"`
	Email        *string          `json:"email" binding:"omitempty,email"`
	Qty          *int             `json:"qty"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	Status       *string          `json:"status"`
	Notes        *string          `json:"notes"`
}

func (r *EditBookingRequest) ToParams() commands.EditBookingParams {
	params := commands.EditBookingParams{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Email:        r.Email,
		Qty:          r.Qty,
		TotalAmount:  r.TotalAmount,
		Notes:        r.Notes,
	}
	if r.Status != nil {
		status := booking.Status(*r.Status)
		params.Status = &status
	}
	return params
}

type RebookRequest struct {
	NewSlotID uuid.UUID `json:"new_slot_id" binding:"required"`
}
