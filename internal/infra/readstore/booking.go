package readstore

import (
	"context"
	"time"

	"kayak-console/internal/domain/booking"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var bookingColumns = []string{
	"b.id",
	"b.slot_id",
	"s.start_time",
	"COALESCE(t.name, '')",
	"b.customer_name",
	"b.phone",
	"b.email",
	"b.qty",
	"b.total_amount",
	"b.status",
	"b.refund_status",
	"b.refund_amount",
	"b.refund_notes",
	"b.cancellation_reason",
	"b.cancelled_at",
	"b.checkout_id",
	"b.notes",
	"b.created_at",
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func bookingSelect() sq.SelectBuilder {
	return psql.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("slots s ON s.id = b.slot_id").
		LeftJoin("tours t ON t.id = s.tour_id")
}

func (r *BookingReadStore) FindInRange(ctx context.Context, from, to time.Time, statuses []booking.Status) ([]booking.Booking, error) {
	q := bookingSelect().
		Where(sq.GtOrEq{"s.start_time": from}).
		Where(sq.Lt{"s.start_time": to}).
		OrderBy("s.start_time", "b.created_at")
	if len(statuses) > 0 {
		vals := make([]string, len(statuses))
		for i, s := range statuses {
			vals[i] = s.String()
		}
		q = q.Where(sq.Eq{"b.status": vals})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bookings range query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings in range", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	sql, args, err := bookingSelect().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &bookings[0], nil
}

// FindRequested lists the refund queue, oldest request first.
func (r *BookingReadStore) FindRequested(ctx context.Context) ([]booking.Booking, error) {
	sql, args, err := bookingSelect().
		Where(sq.Eq{"b.refund_status": booking.RefundRequested}).
		OrderBy("b.created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build refund queue query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find requested refunds", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingReadStore) FindRecentlySettled(ctx context.Context, limit int) ([]booking.Booking, error) {
	sql, args, err := bookingSelect().
		Where(sq.Eq{"b.refund_status": []booking.RefundStatus{booking.RefundProcessed, booking.RefundFailed}}).
		OrderBy("b.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build settled refunds query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find settled refunds", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindTargets returns bookings that would be reached by a broadcast over the
// given slots. Only PAID and CONFIRMED customers are messaged.
func (r *BookingReadStore) FindTargets(ctx context.Context, slotIDs []uuid.UUID) ([]booking.Booking, error) {
	sql, args, err := bookingSelect().
		Where(sq.Eq{"b.slot_id": slotIDs}).
		Where(sq.Eq{"b.status": []booking.Status{booking.StatusPaid, booking.StatusConfirmed}}).
		OrderBy("s.start_time", "b.created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build broadcast targets query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find broadcast targets", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]booking.Booking, error) {
	out := make([]booking.Booking, 0)
	for rows.Next() {
		var (
			b            booking.Booking
			total        decimal.NullDecimal
			refundAmount decimal.NullDecimal
			status       string
			refundStatus *string
		)
		err := rows.Scan(
			&b.ID,
			&b.SlotID,
			&b.SlotStart,
			&b.TourName,
			&b.CustomerName,
			&b.Phone,
			&b.Email,
			&b.Qty,
			&total,
			&status,
			&refundStatus,
			&refundAmount,
			&b.RefundNotes,
			&b.CancelReason,
			&b.CancelledAt,
			&b.CheckoutID,
			&b.Notes,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		if total.Valid {
			b.TotalAmount = total.Decimal
		}
		if refundAmount.Valid {
			d := refundAmount.Decimal
			b.RefundAmount = &d
		}
		b.Status = booking.Status(status)
		if refundStatus != nil {
			rs := booking.RefundStatus(*refundStatus)
			b.RefundStatus = &rs
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return out, nil
}
