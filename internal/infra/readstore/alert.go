package readstore

import (
	"context"

	"kayak-console/internal/domain/booking"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	sq "github.com/Masterminds/squirrel"
)

// AlertReadStore serves the dashboard counters that need attention badges.
type AlertReadStore struct {
	db db.DBTX
}

func NewAlertReadStore(dbtx db.DBTX) *AlertReadStore {
	return &AlertReadStore{db: dbtx}
}

func (r *AlertReadStore) CountRefundsRequested(ctx context.Context) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").
		From("bookings").
		Where(sq.Eq{"refund_status": booking.RefundRequested}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build refund count query", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count requested refunds", err)
	}
	return count, nil
}

func (r *AlertReadStore) CountConversationsWaiting(ctx context.Context) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").
		From("conversations").
		Where(sq.Eq{"status": "NEEDS_HUMAN"}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build conversations count query", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count waiting conversations", err)
	}
	return count, nil
}
