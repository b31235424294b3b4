package writerepo

import (
	"context"

	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	"github.com/google/uuid"
)

type PhotoRepository struct{}

func NewPhotoRepository() *PhotoRepository {
	return &PhotoRepository{}
}

func (r *PhotoRepository) RecordPhoto(ctx context.Context, tx db.DBTX, slotID uuid.UUID, photoURL string) error {
	sql, args, err := psql.Insert("trip_photos").
		Columns("slot_id", "photo_url").
		Values(slotID, photoURL).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build trip photo insert", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to record trip photo", err)
	}
	return nil
}
