package writerepo

import (
	"context"
	"time"

	domslot "kayak-console/internal/domain/slot"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status domslot.Status) error {
	sql, args, err := psql.Update("slots").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build slot status update", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to set slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// AdjustBooked moves the booked counter by delta, floored at zero.
func (r *SlotRepository) AdjustBooked(ctx context.Context, tx db.DBTX, id uuid.UUID, delta int) error {
	sql, args, err := psql.Update("slots").
		Set("booked", sq.Expr("GREATEST(booked + ?, 0)", delta)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booked adjustment", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to adjust booked count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// ApplyPeak marks every slot of the tour inside [from, to) as peak with the
// given per-person override. Returns the number of slots touched.
func (r *SlotRepository) ApplyPeak(ctx context.Context, tx db.DBTX, tourID uuid.UUID, from, to time.Time, price decimal.Decimal) (int64, error) {
	sql, args, err := psql.Update("slots").
		Set("is_peak", true).
		Set("price_per_person_override", price).
		Where(sq.Eq{"tour_id": tourID}).
		Where(sq.GtOrEq{"start_time": from}).
		Where(sq.Lt{"start_time": to}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build peak apply update", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to apply peak pricing", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) ClearPeak(ctx context.Context, tx db.DBTX, tourID uuid.UUID, from, to time.Time) (int64, error) {
	sql, args, err := psql.Update("slots").
		Set("is_peak", false).
		Set("price_per_person_override", nil).
		Where(sq.Eq{"tour_id": tourID}).
		Where(sq.GtOrEq{"start_time": from}).
		Where(sq.Lt{"start_time": to}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build peak clear update", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear peak pricing", err)
	}
	return tag.RowsAffected(), nil
}
