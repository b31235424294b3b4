package commands

import (
	"context"
	"log/slog"

	"kayak-console/internal/domain/booking"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/queries"
	"kayak-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotRefundable = errs.New("booking has no online checkout to refund")

// ManualRefundNote is recorded when an operator settles a refund outside the
// payment provider (cash, EFT).
const ManualRefundNote = "Manual refund"

type RefundAllResult struct {
	BookingID uuid.UUID
	Reference string
	Err       error
}

type RefundAllSummary struct {
	Processed int
	Failed    int
	Results   []RefundAllResult
}

type RefundCommands interface {
	// Process pushes one queued refund through the payment provider.
	Process(ctx context.Context, bookingID uuid.UUID) error
	// MarkProcessed settles a queued refund that was paid out manually.
	MarkProcessed(ctx context.Context, bookingID uuid.UUID) error
	// ProcessAll drains the requested queue one booking at a time. A failed
	// refund does not stop the rest of the queue.
	ProcessAll(ctx context.Context) (*RefundAllSummary, error)
}

type refundCommandsImpl struct {
	bookingRepo BookingWriteRepository
	store       queries.RefundReadStore
	bookings    queries.BookingReadStore
	notifier    BookingNotifier
	db          *pgxpool.Pool
	logger      *slog.Logger
}

func NewRefundCommands(
	bookingRepo BookingWriteRepository,
	store queries.RefundReadStore,
	bookings queries.BookingReadStore,
	notifier BookingNotifier,
	db *pgxpool.Pool,
	logger *slog.Logger,
) RefundCommands {
	return &refundCommandsImpl{
		bookingRepo: bookingRepo,
		store:       store,
		bookings:    bookings,
		notifier:    notifier,
		db:          db,
		logger:      logger,
	}
}

func (c *refundCommandsImpl) Process(ctx context.Context, bookingID uuid.UUID) error {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !b.Refundable() {
		return ErrNotRefundable
	}
	return c.notifier.ProcessRefund(ctx, bookingID)
}

func (c *refundCommandsImpl) MarkProcessed(ctx context.Context, bookingID uuid.UUID) error {
	notes := ManualRefundNote
	_, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.bookingRepo.SetRefundState(ctx, tx, bookingID, booking.RefundProcessed, nil, &notes)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *refundCommandsImpl) ProcessAll(ctx context.Context) (*RefundAllSummary, error) {
	queue, err := c.store.FindRequested(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	summary := &RefundAllSummary{Results: make([]RefundAllResult, 0, len(queue))}
	for _, b := range queue {
		result := RefundAllResult{BookingID: b.ID, Reference: b.Reference()}
		if !b.Refundable() {
			result.Err = ErrNotRefundable
		} else if err := c.notifier.ProcessRefund(ctx, b.ID); err != nil {
			result.Err = err
		}

		if result.Err != nil {
			summary.Failed++
			c.logger.Warn("queued refund failed",
				"booking_id", b.ID, "error", result.Err)
		} else {
			summary.Processed++
		}
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}
