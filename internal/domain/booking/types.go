package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusHeld      Status = "HELD"
	StatusConfirmed Status = "CONFIRMED"
	StatusPaid      Status = "PAID"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusHeld, StatusConfirmed, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsPaid reports whether the status counts toward the paid total. HELD and
// PENDING bookings are billed but unpaid; CANCELLED contributes to billed
// unless the caller's query already excluded it.
func (s Status) IsPaid() bool {
	switch s {
	case StatusPaid, StatusConfirmed, StatusCompleted:
		return true
	default:
		return false
	}
}

// AllStatuses is the full lifecycle allow-list, in select-box order.
var AllStatuses = []Status{
	StatusPending,
	StatusHeld,
	StatusConfirmed,
	StatusPaid,
	StatusCompleted,
	StatusCancelled,
}

type RefundStatus string

const (
	RefundRequested RefundStatus = "REQUESTED"
	RefundProcessed RefundStatus = "PROCESSED"
	RefundFailed    RefundStatus = "FAILED"
)

// Booking is the read-mostly projection the console works with: a booking row
// joined with its slot start time and denormalized customer/tour display
// fields. SlotStart is nil when the slot join failed; such records cannot be
// placed in any day bucket and are dropped by the aggregator.
type Booking struct {
	ID           uuid.UUID
	SlotID       *uuid.UUID
	SlotStart    *time.Time
	TourName     string
	CustomerName string
	Phone        string
	Email        string
	Qty          int
	TotalAmount  decimal.Decimal
	Status       Status
	RefundStatus *RefundStatus
	RefundAmount *decimal.Decimal
	RefundNotes  *string
	CancelReason *string
	CancelledAt  *time.Time
	CheckoutID   *string
	Notes        *string
	CreatedAt    time.Time
}

// Reference is the short human-facing booking reference (first eight hex
// digits of the id, uppercased), matching what confirmation emails print.
func (b Booking) Reference() string {
	s := b.ID.String()
	cleaned := s[:8]
	out := make([]byte, len(cleaned))
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func (b Booking) CanBeCancelled() bool {
	return b.Status != StatusCancelled
}

// Refundable reports whether the refund function can process this booking
// automatically. Without a checkout reference only a manual refund request is
// possible.
func (b Booking) Refundable() bool {
	return b.CheckoutID != nil && *b.CheckoutID != ""
}
