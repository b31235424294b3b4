package readstore

import (
	"context"

	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"
	"kayak-console/internal/usecase/queries"
)

type PhotoReadStore struct {
	db db.DBTX
}

func NewPhotoReadStore(dbtx db.DBTX) *PhotoReadStore {
	return &PhotoReadStore{db: dbtx}
}

func (r *PhotoReadStore) History(ctx context.Context, limit int) ([]queries.PhotoHistoryItem, error) {
	sql, args, err := psql.Select(
		"p.id",
		"p.slot_id",
		"p.photo_url",
		"COALESCE(t.name, '')",
		"s.start_time",
		"p.uploaded_at",
	).
		From("trip_photos p").
		LeftJoin("slots s ON s.id = p.slot_id").
		LeftJoin("tours t ON t.id = s.tour_id").
		OrderBy("p.uploaded_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build photo history query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find photo history", err)
	}
	defer rows.Close()

	out := make([]queries.PhotoHistoryItem, 0)
	for rows.Next() {
		var item queries.PhotoHistoryItem
		err := rows.Scan(
			&item.ID,
			&item.SlotID,
			&item.PhotoURL,
			&item.TourName,
			&item.SlotStart,
			&item.UploadedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan photo history row", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read photo history rows", err)
	}
	return out, nil
}
