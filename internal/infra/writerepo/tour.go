package writerepo

import (
	"context"

	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type TourRepository struct{}

func NewTourRepository() *TourRepository {
	return &TourRepository{}
}

// SetPeakPrice stores the tour-wide peak price. A nil price clears it.
func (r *TourRepository) SetPeakPrice(ctx context.Context, tx db.DBTX, tourID uuid.UUID, price *decimal.Decimal) error {
	q := psql.Update("tours").Where(sq.Eq{"id": tourID})
	if price != nil {
		q = q.Set("peak_price_per_person", *price)
	} else {
		q = q.Set("peak_price_per_person", nil)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build peak price update", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to set peak price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tour not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
