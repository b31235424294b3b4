package queries

import (
	"context"
	"time"

	domslot "kayak-console/internal/domain/slot"
	domtour "kayak-console/internal/domain/tour"
	"kayak-console/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

type TourReadStore interface {
	FindActive(ctx context.Context) ([]domtour.Tour, error)
	// FindPeakSlots returns is_peak slots ordered by tour then start time.
	FindPeakSlots(ctx context.Context) ([]domslot.Slot, error)
}

type PricingQueries interface {
	Overview(ctx context.Context) (*PricingView, error)
}

type pricingQueriesImpl struct {
	store TourReadStore
	loc   *time.Location
}

func NewPricingQueries(store TourReadStore, loc *time.Location) PricingQueries {
	return &pricingQueriesImpl{store: store, loc: loc}
}

func (q *pricingQueriesImpl) Overview(ctx context.Context) (*PricingView, error) {
	tours, err := q.store.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	peakSlots, err := q.store.FindPeakSlots(ctx)
	if err != nil {
		return nil, err
	}

	view := &PricingView{
		Tours:  make([]TourView, len(tours)),
		Ranges: collapsePeakRanges(peakSlots, q.loc),
	}
	for i, t := range tours {
		view.Tours[i] = TourView{
			ID:              t.ID,
			Name:            t.Name,
			DurationMinutes: t.DurationMinutes,
			BasePrice:       t.BasePrice,
			PeakPrice:       t.PeakPrice,
			Active:          t.Active,
		}
	}
	return view, nil
}

// collapsePeakRanges merges per-day peak slots into contiguous date ranges.
// A range breaks when the tour changes, the price changes, or a calendar day
// is skipped. Slots must arrive ordered by tour then start time.
func collapsePeakRanges(slots []domslot.Slot, loc *time.Location) []PeakRange {
	ranges := make([]PeakRange, 0)
	var current *PeakRange
	var lastDay time.Time

	flush := func() {
		if current != nil {
			ranges = append(ranges, *current)
			current = nil
		}
	}

	for _, s := range slots {
		price := decimal.Zero
		if s.PriceOverride != nil {
			price = *s.PriceOverride
		}
		day := clock.StartOfDay(s.StartTime, loc)
		dayKey := day.Format("2006-01-02")

		sameRun := current != nil &&
			current.TourID == s.TourID &&
			current.Price.Equal(price)
		if sameRun {
			if dayKey == current.EndDate {
				current.SlotCount++
				continue
			}
			if day.Sub(lastDay) <= 24*time.Hour {
				current.EndDate = dayKey
				current.SlotCount++
				lastDay = day
				continue
			}
		}

		flush()
		current = &PeakRange{
			TourID:    s.TourID,
			StartDate: dayKey,
			EndDate:   dayKey,
			Price:     price,
			SlotCount: 1,
		}
		lastDay = day
	}
	flush()
	return ranges
}
