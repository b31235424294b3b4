package commands

import (
	"context"
	"time"

	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/pkg/clock"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeakRange = errs.New("peak range end precedes start")
	ErrInvalidPeakPrice = errs.New("peak price must be positive")
)

type PeakResult struct {
	SlotsTouched int64
}

type PricingCommands interface {
	// ApplyPeak sets the tour's peak rate and marks every slot in the
	// inclusive [from, to] business-day range as peak with that rate.
	ApplyPeak(ctx context.Context, tourID uuid.UUID, from, to time.Time, price decimal.Decimal) (*PeakResult, error)
	// RemovePeak clears the peak flag and override from the slots in the
	// inclusive business-day range.
	RemovePeak(ctx context.Context, tourID uuid.UUID, from, to time.Time) (*PeakResult, error)
}

type pricingCommandsImpl struct {
	tourRepo TourWriteRepository
	slotRepo SlotWriteRepository
	db       *pgxpool.Pool
	loc      *time.Location
}

func NewPricingCommands(tourRepo TourWriteRepository, slotRepo SlotWriteRepository, db *pgxpool.Pool, loc *time.Location) PricingCommands {
	return &pricingCommandsImpl{
		tourRepo: tourRepo,
		slotRepo: slotRepo,
		db:       db,
		loc:      loc,
	}
}

func (c *pricingCommandsImpl) ApplyPeak(ctx context.Context, tourID uuid.UUID, from, to time.Time, price decimal.Decimal) (*PeakResult, error) {
	if !price.IsPositive() {
		return nil, ErrInvalidPeakPrice
	}
	start, end, err := c.dayRange(from, to)
	if err != nil {
		return nil, err
	}

	touched, err := shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (int64, error) {
		if err := c.tourRepo.SetPeakPrice(ctx, tx, tourID, &price); err != nil {
			return 0, err
		}
		return c.slotRepo.ApplyPeak(ctx, tx, tourID, start, end, price)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &PeakResult{SlotsTouched: touched}, nil
}

func (c *pricingCommandsImpl) RemovePeak(ctx context.Context, tourID uuid.UUID, from, to time.Time) (*PeakResult, error) {
	start, end, err := c.dayRange(from, to)
	if err != nil {
		return nil, err
	}

	touched, err := shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (int64, error) {
		if err := c.tourRepo.SetPeakPrice(ctx, tx, tourID, nil); err != nil {
			return 0, err
		}
		return c.slotRepo.ClearPeak(ctx, tx, tourID, start, end)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &PeakResult{SlotsTouched: touched}, nil
}

// dayRange widens the inclusive day pair into the half-open timestamp range
// [start of from, start of day after to) in the business timezone.
func (c *pricingCommandsImpl) dayRange(from, to time.Time) (time.Time, time.Time, error) {
	start := clock.StartOfDay(from, c.loc)
	end := clock.StartOfDay(to, c.loc).AddDate(0, 0, 1)
	if end.Before(start) || end.Equal(start) {
		return time.Time{}, time.Time{}, ErrInvalidPeakRange
	}
	return start, end, nil
}
