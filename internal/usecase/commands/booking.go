package commands

import (
	"context"
	"log/slog"

	"kayak-console/internal/domain/booking"
	"kayak-console/internal/domain/tour"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/pkg/clock"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/queries"
	"kayak-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrTourNotFound            = errs.New("tour not found")
	ErrBookingAlreadyCancelled = errs.New("booking already cancelled")
	ErrNoParticipants          = errs.New("booking needs at least one participant")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CancelReasonAdmin is recorded on bookings cancelled from the console.
const CancelReasonAdmin = "Cancelled by admin"

// TourReader is the subset of the tour store booking creation needs.
type TourReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*tour.Tour, error)
}

type EditBookingParams struct {
	CustomerName *string
	Phone        *string
	Email        *string
	Qty          *int
	TotalAmount  *decimal.Decimal
	Status       *booking.Status
	Notes        *string
}

type CreateBookingInput struct {
	SlotID          uuid.UUID
	CustomerName    string
	Phone           string
	Email           string
	Adults          int
	Children        int
	Notes           *string
	SendPaymentLink bool
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Qty       int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// BookingNotifier covers the customer-facing side effects of booking
// mutations. Delivery failures never roll back the database change.
type BookingNotifier interface {
	SendBookingConfirmation(ctx context.Context, bookingID uuid.UUID, sendPaymentLink bool) error
	SendInvoice(ctx context.Context, invoiceID, bookingID *uuid.UUID, invoiceNumber string, resend bool) error
	NotifyRebooked(ctx context.Context, bookingID, newSlotID uuid.UUID) error
	ProcessRefund(ctx context.Context, bookingID uuid.UUID) error
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	Edit(ctx context.Context, id uuid.UUID, params EditBookingParams) error
	MarkPaid(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	// RequestRefund routes refundable bookings to the payment provider and
	// falls back to queueing a manual refund for the rest. The returned flag
	// is true when the refund was queued rather than processed online.
	RequestRefund(ctx context.Context, id uuid.UUID) (queued bool, err error)
	Rebook(ctx context.Context, id uuid.UUID, newSlotID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo  BookingWriteRepository
	slotRepo     SlotWriteRepository
	bookingStore queries.BookingReadStore
	slotStore    queries.SlotReadStore
	tourStore    TourReader
	notifier     BookingNotifier
	db           *pgxpool.Pool
	clock        clock.Clock
	logger       *slog.Logger
}

func NewBookingCommands(
	bookingRepo BookingWriteRepository,
	slotRepo SlotWriteRepository,
	bookingStore queries.BookingReadStore,
	slotStore queries.SlotReadStore,
	tourStore TourReader,
	notifier BookingNotifier,
	db *pgxpool.Pool,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		bookingStore: bookingStore,
		slotStore:    slotStore,
		tourStore:    tourStore,
		notifier:     notifier,
		db:           db,
		clock:        clk,
		logger:       logger,
	}
}

// Create books a walk-in or phone customer onto a slot. The per-person rate
// follows the slot override when set, otherwise the tour's peak price,
// otherwise the base price. The slot counter moves in the same transaction
// as the insert; confirmation and invoice delivery happen after commit.
func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error) {
	qty := input.Adults + input.Children
	if qty < 1 {
		return nil, ErrNoParticipants
	}

	slot, err := c.slotStore.FindByID(ctx, input.SlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tourEntity, err := c.tourStore.FindByID(ctx, slot.TourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	unitPrice := tourEntity.UnitPrice(slot.PriceOverride)
	total := unitPrice.Mul(decimal.NewFromInt(int64(qty)))

	bookingID, err := shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := c.bookingRepo.Create(ctx, tx, CreateBookingParams{
			SlotID:       input.SlotID,
			CustomerName: input.CustomerName,
			Phone:        input.Phone,
			Email:        input.Email,
			Qty:          qty,
			TotalAmount:  total,
			Status:       booking.StatusPending,
			Notes:        input.Notes,
		})
		if err != nil {
			return uuid.Nil, err
		}
		if err := c.slotRepo.AdjustBooked(ctx, tx, input.SlotID, qty); err != nil {
			return uuid.Nil, err
		}
		return id, nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.notifier.SendBookingConfirmation(ctx, bookingID, input.SendPaymentLink); err != nil {
		c.logger.Warn("booking confirmation delivery failed",
			"booking_id", bookingID, "error", err)
	}
	if err := c.notifier.SendInvoice(ctx, nil, &bookingID, "", false); err != nil {
		c.logger.Warn("invoice delivery failed",
			"booking_id", bookingID, "error", err)
	}

	return &CreateBookingResult{
		BookingID: bookingID,
		Qty:       qty,
		UnitPrice: unitPrice,
		Total:     total,
	}, nil
}

func (c *bookingCommandsImpl) Edit(ctx context.Context, id uuid.UUID, params EditBookingParams) error {
	if params.Qty != nil && *params.Qty < 1 {
		one := 1
		params.Qty = &one
	}
	if params.Status != nil && !params.Status.IsValid() {
		return errs.New("invalid booking status")
	}

	_, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.bookingRepo.UpdateFields(ctx, tx, id, BookingUpdate(params))
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) MarkPaid(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.bookingRepo.SetStatus(ctx, tx, id, booking.StatusPaid)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Cancel marks the booking cancelled and releases its seats back to the slot.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	b, err := c.findBooking(ctx, id)
	if err != nil {
		return err
	}
	if !b.CanBeCancelled() {
		return ErrBookingAlreadyCancelled
	}

	_, err = shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		if err := c.bookingRepo.Cancel(ctx, tx, id, CancelReasonAdmin, c.clock.Now()); err != nil {
			return struct{}{}, err
		}
		if b.SlotID != nil {
			if err := c.slotRepo.AdjustBooked(ctx, tx, *b.SlotID, -b.Qty); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) RequestRefund(ctx context.Context, id uuid.UUID) (bool, error) {
	b, err := c.findBooking(ctx, id)
	if err != nil {
		return false, err
	}

	if b.Refundable() {
		return false, c.notifier.ProcessRefund(ctx, id)
	}

	// No online checkout to reverse; queue it for manual settlement.
	amount := b.TotalAmount
	notes := "Requested from bookings page"
	_, err = shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.bookingRepo.SetRefundState(ctx, tx, id, booking.RefundRequested, &amount, &notes)
	})
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return true, nil
}

// Rebook moves the booking to another slot, shifting the booked counters of
// both slots, then tells the customer. The notification is best effort.
func (c *bookingCommandsImpl) Rebook(ctx context.Context, id uuid.UUID, newSlotID uuid.UUID) error {
	b, err := c.findBooking(ctx, id)
	if err != nil {
		return err
	}
	if b.SlotID != nil && *b.SlotID == newSlotID {
		return nil
	}

	if _, err := c.slotStore.FindByID(ctx, newSlotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	_, err = shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		if err := c.bookingRepo.Rebook(ctx, tx, id, newSlotID); err != nil {
			return struct{}{}, err
		}
		if b.SlotID != nil {
			if err := c.slotRepo.AdjustBooked(ctx, tx, *b.SlotID, -b.Qty); err != nil {
				return struct{}{}, err
			}
		}
		if err := c.slotRepo.AdjustBooked(ctx, tx, newSlotID, b.Qty); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.notifier.NotifyRebooked(ctx, id, newSlotID); err != nil {
		c.logger.Warn("rebook notification delivery failed",
			"booking_id", id, "new_slot_id", newSlotID, "error", err)
	}
	return nil
}

func (c *bookingCommandsImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := c.bookingStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}
