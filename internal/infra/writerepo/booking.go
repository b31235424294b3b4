package writerepo

import (
	"context"
	"time"

	"kayak-console/internal/domain/booking"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"
	"kayak-console/internal/usecase/commands"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, params commands.CreateBookingParams) (uuid.UUID, error) {
	sql, args, err := psql.Insert("bookings").
		Columns(
			"slot_id",
			"customer_name",
			"phone",
			"email",
			"qty",
			"total_amount",
			"status",
			"notes",
		).
		Values(
			params.SlotID,
			params.CustomerName,
			params.Phone,
			params.Email,
			params.Qty,
			params.TotalAmount,
			params.Status,
			params.Notes,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateFields(ctx context.Context, tx db.DBTX, id uuid.UUID, update commands.BookingUpdate) error {
	q := psql.Update("bookings").Where(sq.Eq{"id": id})
	changed := false
	if update.CustomerName != nil {
		q = q.Set("customer_name", *update.CustomerName)
		changed = true
	}
	if update.Phone != nil {
		q = q.Set("phone", *update.Phone)
		changed = true
	}
	if update.Email != nil {
		q = q.Set("email", *update.Email)
		changed = true
	}
	if update.Qty != nil {
		q = q.Set("qty", *update.Qty)
		changed = true
	}
	if update.TotalAmount != nil {
		q = q.Set("total_amount", *update.TotalAmount)
		changed = true
	}
	if update.Status != nil {
		q = q.Set("status", *update.Status)
		changed = true
	}
	if update.Notes != nil {
		q = q.Set("notes", *update.Notes)
		changed = true
	}
	if !changed {
		return nil
	}
	return r.exec(ctx, tx, q, "failed to update booking")
}

func (r *BookingRepository) SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	q := psql.Update("bookings").
		Set("status", status).
		Where(sq.Eq{"id": id})
	return r.exec(ctx, tx, q, "failed to set booking status")
}

func (r *BookingRepository) Cancel(ctx context.Context, tx db.DBTX, id uuid.UUID, reason string, at time.Time) error {
	q := psql.Update("bookings").
		Set("status", booking.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", at).
		Where(sq.Eq{"id": id})
	return r.exec(ctx, tx, q, "failed to cancel booking")
}

func (r *BookingRepository) SetRefundState(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.RefundStatus, amount *decimal.Decimal, notes *string) error {
	q := psql.Update("bookings").
		Set("refund_status", status).
		Where(sq.Eq{"id": id})
	if amount != nil {
		q = q.Set("refund_amount", *amount)
	}
	if notes != nil {
		q = q.Set("refund_notes", *notes)
	}
	return r.exec(ctx, tx, q, "failed to set refund state")
}

func (r *BookingRepository) Rebook(ctx context.Context, tx db.DBTX, id uuid.UUID, slotID uuid.UUID) error {
	q := psql.Update("bookings").
		Set("slot_id", slotID).
		Where(sq.Eq{"id": id})
	return r.exec(ctx, tx, q, "failed to rebook booking")
}

func (r *BookingRepository) exec(ctx context.Context, tx db.DBTX, q sq.UpdateBuilder, msg string) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
