package readstore

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

var slotColumns = []string{
	"s.id",
	"s.tour_id",
	"COALESCE(t.name, '')",
	"s.start_time",
	"s.capacity_total",
	"s.booked",
	"s.held",
	"s.status",
	"s.price_per_person_override",
	"s.is_peak",
}

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func slotSelect() sq.SelectBuilder {
	return psql.Select(slotColumns...).
		From("slots s").
		LeftJoin("tours t ON t.id = s.tour_id")
}

func (r *SlotReadStore) FindInRange(ctx context.Context, from, to time.Time) ([]domslot.Slot, error) {
	sql, args, err := slotSelect().
		Where(sq.GtOrEq{"s.start_time": from}).
		Where(sq.Lt{"s.start_time": to}).
		OrderBy("s.start_time").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build slots range query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots in range", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*domslot.Slot, error) {
	sql, args, err := slotSelect().Where(sq.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build slot query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slot by id", err)
	}
	defer rows.Close()

	slots, err := scanSlots(rows)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &slots[0], nil
}

func (r *SlotReadStore) FindOpenFuture(ctx context.Context, after time.Time) ([]domslot.Slot, error) {
	sql, args, err := slotSelect().
		Where(sq.Eq{"s.status": domslot.StatusOpen}).
		Where(sq.Gt{"s.start_time": after}).
		OrderBy("s.start_time").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build open slots query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find open future slots", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (r *SlotReadStore) FindBookedBetween(ctx context.Context, from, to time.Time) ([]domslot.Slot, error) {
	sql, args, err := slotSelect().
		Where(sq.Gt{"s.booked": 0}).
		Where(sq.Gt{"s.start_time": from}).
		Where(sq.Lt{"s.start_time": to}).
		OrderBy("s.start_time DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booked slots query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked slots", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

func scanSlots(rows pgx.Rows) ([]domslot.Slot, error) {
	out := make([]domslot.Slot, 0)
	for rows.Next() {
		var (
			s        domslot.Slot
			status   string
			override decimal.NullDecimal
		)
		err := rows.Scan(
			&s.ID,
			&s.TourID,
			&s.TourName,
			&s.StartTime,
			&s.CapacityTotal,
			&s.Booked,
			&s.Held,
			&status,
			&override,
			&s.IsPeak,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		s.Status = domslot.Status(status)
		if override.Valid {
			d := override.Decimal
			s.PriceOverride = &d
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return out, nil
}
