package queries

import (
	"context"
	"time"

	"kayak-console/internal/pkg/clock"
)

// PhotoHistoryLimit is how many past photo sends the page shows.
const PhotoHistoryLimit = 20

// PhotoLookbackDays bounds how far back a trip can be and still receive
// photos.
const PhotoLookbackDays = 7

type PhotoReadStore interface {
	History(ctx context.Context, limit int) ([]PhotoHistoryItem, error)
}

type PhotoQueries interface {
	// RecentTrips lists departed slots of the past week that carried at
	// least one guest, grouped by business-timezone day.
	RecentTrips(ctx context.Context) ([]SlotDayGroup, error)
	History(ctx context.Context) ([]PhotoHistoryItem, error)
}

type photoQueriesImpl struct {
	photos PhotoReadStore
	slots  SlotReadStore
	clock  clock.Clock
	loc    *time.Location
}

func NewPhotoQueries(store PhotoReadStore, slotStore SlotReadStore, clk clock.Clock, loc *time.Location) PhotoQueries {
	return &photoQueriesImpl{photos: store, slots: slotStore, clock: clk, loc: loc}
}

func (q *photoQueriesImpl) RecentTrips(ctx context.Context) ([]SlotDayGroup, error) {
	now := q.clock.Now()
	slots, err := q.slots.FindBookedBetween(ctx, now.AddDate(0, 0, -PhotoLookbackDays), now)
	if err != nil {
		return nil, err
	}
	return groupSlotsByDay(slots, q.loc), nil
}

func (q *photoQueriesImpl) History(ctx context.Context) ([]PhotoHistoryItem, error) {
	return q.photos.History(ctx, PhotoHistoryLimit)
}
