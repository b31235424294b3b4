package commands

import (
	"context"
	"time"

	"kayak-console/internal/domain/booking"
	domslot "kayak-console/internal/domain/slot"
	"kayak-console/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side ports. Implementations live in internal/infra/writerepo.

type BookingUpdate struct {
	CustomerName *string
	Phone        *string
	Email        *string
	Qty          *int
	TotalAmount  *decimal.Decimal
	Status       *booking.Status
	Notes        *string
}

type CreateBookingParams struct {
	SlotID       uuid.UUID
	CustomerName string
	Phone        string
	Email        string
	Qty          int
	TotalAmount  decimal.Decimal
	Status       booking.Status
	Notes        *string
}

type BookingWriteRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateBookingParams) (uuid.UUID, error)
	UpdateFields(ctx context.Context, tx db.DBTX, id uuid.UUID, update BookingUpdate) error
	SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	Cancel(ctx context.Context, tx db.DBTX, id uuid.UUID, reason string, at time.Time) error
	SetRefundState(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.RefundStatus, amount *decimal.Decimal, notes *string) error
	Rebook(ctx context.Context, tx db.DBTX, id uuid.UUID, slotID uuid.UUID) error
}

type SlotWriteRepository interface {
	SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status domslot.Status) error
	AdjustBooked(ctx context.Context, tx db.DBTX, id uuid.UUID, delta int) error
	ApplyPeak(ctx context.Context, tx db.DBTX, tourID uuid.UUID, from, to time.Time, price decimal.Decimal) (int64, error)
	ClearPeak(ctx context.Context, tx db.DBTX, tourID uuid.UUID, from, to time.Time) (int64, error)
}

type TourWriteRepository interface {
	SetPeakPrice(ctx context.Context, tx db.DBTX, tourID uuid.UUID, price *decimal.Decimal) error
}

type BroadcastWriteRepository interface {
	RecordHistory(ctx context.Context, tx db.DBTX, action, message string, slotIDs []uuid.UUID, recipientCount int) error
}

type PhotoWriteRepository interface {
	RecordPhoto(ctx context.Context, tx db.DBTX, slotID uuid.UUID, photoURL string) error
}
