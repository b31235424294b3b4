package readstore

import (
	"context"

	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"
	"kayak-console/internal/usecase/queries"
)

type BroadcastReadStore struct {
	db db.DBTX
}

func NewBroadcastReadStore(dbtx db.DBTX) *BroadcastReadStore {
	return &BroadcastReadStore{db: dbtx}
}

func (r *BroadcastReadStore) History(ctx context.Context, limit int) ([]queries.BroadcastHistoryItem, error) {
	sql, args, err := psql.Select(
		"id",
		"action",
		"message",
		"slot_ids",
		"recipient_count",
		"created_at",
	).
		From("broadcast_history").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build broadcast history query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find broadcast history", err)
	}
	defer rows.Close()

	out := make([]queries.BroadcastHistoryItem, 0)
	for rows.Next() {
		var item queries.BroadcastHistoryItem
		err := rows.Scan(
			&item.ID,
			&item.Action,
			&item.Message,
			&item.SlotIDs,
			&item.RecipientCount,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan broadcast history row", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read broadcast history rows", err)
	}
	return out, nil
}
