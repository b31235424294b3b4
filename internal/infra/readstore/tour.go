package readstore

import (
	"context"

	domslot "kayak-console/internal/domain/slot"
	domtour "kayak-console/internal/domain/tour"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TourReadStore struct {
	db db.DBTX
}

func NewTourReadStore(dbtx db.DBTX) *TourReadStore {
	return &TourReadStore{db: dbtx}
}

func (r *TourReadStore) FindActive(ctx context.Context) ([]domtour.Tour, error) {
	sql, args, err := psql.Select(
		"id",
		"name",
		"duration_minutes",
		"base_price_per_person",
		"peak_price_per_person",
		"default_capacity",
		"active",
	).
		From("tours").
		Where(sq.Eq{"active": true}).
		OrderBy("sort_order", "name").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build tours query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active tours", err)
	}
	defer rows.Close()

	out := make([]domtour.Tour, 0)
	for rows.Next() {
		var (
			t    domtour.Tour
			base decimal.NullDecimal
			peak decimal.NullDecimal
		)
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.DurationMinutes,
			&base,
			&peak,
			&t.DefaultCapacity,
			&t.Active,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan tour row", err)
		}
		if base.Valid {
			d := base.Decimal
			t.BasePrice = &d
		}
		if peak.Valid {
			d := peak.Decimal
			t.PeakPrice = &d
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read tour rows", err)
	}
	return out, nil
}

func (r *TourReadStore) FindByID(ctx context.Context, id uuid.UUID) (*domtour.Tour, error) {
	sql, args, err := psql.Select(
		"id",
		"name",
		"duration_minutes",
		"base_price_per_person",
		"peak_price_per_person",
		"default_capacity",
		"active",
	).
		From("tours").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build tour query", err)
	}

	var (
		t    domtour.Tour
		base decimal.NullDecimal
		peak decimal.NullDecimal
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&t.ID,
		&t.Name,
		&t.DurationMinutes,
		&base,
		&peak,
		&t.DefaultCapacity,
		&t.Active,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tour", err)
	}
	if base.Valid {
		d := base.Decimal
		t.BasePrice = &d
	}
	if peak.Valid {
		d := peak.Decimal
		t.PeakPrice = &d
	}
	return &t, nil
}

func (r *TourReadStore) FindPeakSlots(ctx context.Context) ([]domslot.Slot, error) {
	sql, args, err := slotSelect().
		Where(sq.Eq{"s.is_peak": true}).
		OrderBy("s.tour_id", "s.start_time").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build peak slots query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find peak slots", err)
	}
	defer rows.Close()

	return scanSlots(rows)
}
