package readstore

import (
	"context"

	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"
	"kayak-console/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type VoucherReadStore struct {
	db db.DBTX
}

func NewVoucherReadStore(dbtx db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{db: dbtx}
}

func (r *VoucherReadStore) FindRecent(ctx context.Context, limit int) ([]queries.VoucherView, error) {
	sql, args, err := psql.Select(
		"id",
		"code",
		"status",
		"voucher_type",
		"tour_name",
		"value",
		"recipient_name",
		"recipient_email",
		"buyer_name",
		"buyer_email",
		"expires_at",
		"created_at",
	).
		From("vouchers").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build vouchers query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vouchers", err)
	}
	defer rows.Close()

	out := make([]queries.VoucherView, 0)
	for rows.Next() {
		var (
			v     queries.VoucherView
			value decimal.NullDecimal
		)
		err := rows.Scan(
			&v.ID,
			&v.Code,
			&v.Status,
			&v.Type,
			&v.TourName,
			&value,
			&v.RecipientName,
			&v.RecipientEmail,
			&v.BuyerName,
			&v.BuyerEmail,
			&v.ExpiresAt,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher row", err)
		}
		if value.Valid {
			d := value.Decimal
			v.Value = &d
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read voucher rows", err)
	}
	return out, nil
}
