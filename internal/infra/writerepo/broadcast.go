package writerepo

import (
	"context"

	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	"github.com/google/uuid"
)

type BroadcastRepository struct{}

func NewBroadcastRepository() *BroadcastRepository {
	return &BroadcastRepository{}
}

func (r *BroadcastRepository) RecordHistory(ctx context.Context, tx db.DBTX, action, message string, slotIDs []uuid.UUID, recipientCount int) error {
	sql, args, err := psql.Insert("broadcast_history").
		Columns("action", "message", "slot_ids", "recipient_count").
		Values(action, message, slotIDs, recipientCount).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build broadcast history insert", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to record broadcast history", err)
	}
	return nil
}
