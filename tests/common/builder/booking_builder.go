//go:build unit || e2e

package builder

import (
	"time"

	dombooking "kayak-console/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID           uuid.UUID
	SlotID       *uuid.UUID
	SlotStart    *time.Time
	TourName     string
	CustomerName string
	Phone        string
	Email        string
	Qty          int
	TotalAmount  decimal.Decimal
	Status       dombooking.Status
	RefundStatus *dombooking.RefundStatus
	CheckoutID   *string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	slotID := uuid.New()
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:           uuid.New(),
		SlotID:       &slotID,
		SlotStart:    &start,
		TourName:     "Sunset Paddle",
		CustomerName: "Alice Example",
		Phone:        "+27 82 000 0000",
		Email:        "alice@example.com",
		Qty:          2,
		TotalAmount:  decimal.NewFromInt(500),
		Status:       dombooking.StatusPaid,
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() dombooking.Booking {
	return dombooking.Booking{
		ID:           b.ID,
		SlotID:       b.SlotID,
		SlotStart:    b.SlotStart,
		TourName:     b.TourName,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Email:        b.Email,
		Qty:          b.Qty,
		TotalAmount:  b.TotalAmount,
		Status:       b.Status,
		RefundStatus: b.RefundStatus,
		CheckoutID:   b.CheckoutID,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithSlotStart(t time.Time) *BookingBuilder {
	b.SlotStart = &t
	return b
}

func (b *BookingBuilder) WithoutSlotStart() *BookingBuilder {
	b.SlotStart = nil
	return b
}

func (b *BookingBuilder) WithTourName(name string) *BookingBuilder {
	b.TourName = name
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithQty(qty int) *BookingBuilder {
	b.Qty = qty
	return b
}

func (b *BookingBuilder) WithTotalAmount(amount int64) *BookingBuilder {
	b.TotalAmount = decimal.NewFromInt(amount)
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithRefundStatus(status dombooking.RefundStatus) *BookingBuilder {
	b.RefundStatus = &status
	return b
}

func (b *BookingBuilder) WithCheckoutID(id string) *BookingBuilder {
	b.CheckoutID = &id
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}
