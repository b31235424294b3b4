//go:build unit || e2e

package builder

import (
	"time"

	dominvoice "kayak-console/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceBuilder struct {
	ID            uuid.UUID
	InvoiceNumber *string
	BookingID     *uuid.UUID
	BookingNumber *string
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	TourName      *string
	TourDate      *time.Time
	AdultsQty     *int
	ChildrenQty   *int
	GuidesQty     *int
	Qty           *int
	TotalAmount   *decimal.Decimal
	AmountPaid    *decimal.Decimal
	Notes         *string
	CreatedAt     *time.Time
}

func NewInvoiceBuilder() *InvoiceBuilder {
	number := "INV-2026-0042"
	bookingID := uuid.New()
	name := "Alice Example"
	email := "alice@example.com"
	tour := "Sunset Paddle"
	tourDate := time.Date(2026, 3, 14, 16, 30, 0, 0, time.UTC)
	adults := 2
	total := decimal.NewFromInt(1150)
	paid := decimal.Zero
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &InvoiceBuilder{
		ID:            uuid.New(),
		InvoiceNumber: &number,
		BookingID:     &bookingID,
		CustomerName:  &name,
		CustomerEmail: &email,
		TourName:      &tour,
		TourDate:      &tourDate,
		AdultsQty:     &adults,
		TotalAmount:   &total,
		AmountPaid:    &paid,
		CreatedAt:     &created,
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

func (b *InvoiceBuilder) BuildDomain() dominvoice.Invoice {
	return dominvoice.Invoice{
		ID:            b.ID,
		InvoiceNumber: b.InvoiceNumber,
		BookingID:     b.BookingID,
		BookingNumber: b.BookingNumber,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TourName:      b.TourName,
		TourDate:      b.TourDate,
		Qty:           b.Qty,
		AdultsQty:     b.AdultsQty,
		ChildrenQty:   b.ChildrenQty,
		GuidesQty:     b.GuidesQty,
		TotalAmount:   b.TotalAmount,
		AmountPaid:    b.AmountPaid,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *InvoiceBuilder) WithInvoiceNumber(n string) *InvoiceBuilder {
	b.InvoiceNumber = &n
	return b
}

func (b *InvoiceBuilder) WithoutInvoiceNumber() *InvoiceBuilder {
	b.InvoiceNumber = nil
	return b
}

func (b *InvoiceBuilder) WithCustomerName(name string) *InvoiceBuilder {
	b.CustomerName = &name
	return b
}

func (b *InvoiceBuilder) WithoutCustomer() *InvoiceBuilder {
	b.CustomerName = nil
	b.CustomerEmail = nil
	b.CustomerPhone = nil
	return b
}

func (b *InvoiceBuilder) WithTourName(name string) *InvoiceBuilder {
	b.TourName = &name
	return b
}

func (b *InvoiceBuilder) WithoutTourName() *InvoiceBuilder {
	b.TourName = nil
	return b
}

func (b *InvoiceBuilder) WithNotes(notes string) *InvoiceBuilder {
	b.Notes = &notes
	return b
}

func (b *InvoiceBuilder) WithTotalAmount(amount float64) *InvoiceBuilder {
	d := decimal.NewFromFloat(amount)
	b.TotalAmount = &d
	return b
}

func (b *InvoiceBuilder) WithAmountPaid(amount float64) *InvoiceBuilder {
	d := decimal.NewFromFloat(amount)
	b.AmountPaid = &d
	return b
}

func (b *InvoiceBuilder) WithoutAmounts() *InvoiceBuilder {
	b.TotalAmount = nil
	b.AmountPaid = nil
	return b
}
