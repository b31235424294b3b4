package queries

import (
	"context"
	"time"

	dombooking "kayak-console/internal/domain/booking"
	"kayak-console/internal/pkg/clock"

	"github.com/google/uuid"
)

// BroadcastHistoryLimit is how many past sends the page shows.
const BroadcastHistoryLimit = 15

// BroadcastTargetStore resolves which bookings a broadcast would reach.
// Implemented by the booking read store.
type BroadcastTargetStore interface {
	// FindTargets returns PAID/CONFIRMED bookings on the given slots.
	FindTargets(ctx context.Context, slotIDs []uuid.UUID) ([]dombooking.Booking, error)
}

type BroadcastReadStore interface {
	History(ctx context.Context, limit int) ([]BroadcastHistoryItem, error)
}

type BroadcastQueries interface {
	// Calendar lists open future slots grouped by business-timezone day.
	Calendar(ctx context.Context) ([]SlotDayGroup, error)
	Targets(ctx context.Context, slotIDs []uuid.UUID) ([]BroadcastTarget, error)
	History(ctx context.Context) ([]BroadcastHistoryItem, error)
}

type broadcastQueriesImpl struct {
	history BroadcastReadStore
	targets BroadcastTargetStore
	open    SlotReadStore
	clock   clock.Clock
	loc     *time.Location
}

func NewBroadcastQueries(store BroadcastReadStore, targetStore BroadcastTargetStore, slotStore SlotReadStore, clk clock.Clock, loc *time.Location) BroadcastQueries {
	return &broadcastQueriesImpl{history: store, targets: targetStore, open: slotStore, clock: clk, loc: loc}
}

func (q *broadcastQueriesImpl) Calendar(ctx context.Context) ([]SlotDayGroup, error) {
	slots, err := q.open.FindOpenFuture(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return groupSlotsByDay(slots, q.loc), nil
}

func (q *broadcastQueriesImpl) Targets(ctx context.Context, slotIDs []uuid.UUID) ([]BroadcastTarget, error) {
	if len(slotIDs) == 0 {
		return []BroadcastTarget{}, nil
	}
	bookings, err := q.targets.FindTargets(ctx, slotIDs)
	if err != nil {
		return nil, err
	}
	targets := make([]BroadcastTarget, 0, len(bookings))
	for _, b := range bookings {
		if b.SlotID == nil || b.SlotStart == nil {
			continue
		}
		targets = append(targets, BroadcastTarget{
			BookingID:    b.ID,
			SlotID:       *b.SlotID,
			SlotStart:    *b.SlotStart,
			CustomerName: b.CustomerName,
			Phone:        b.Phone,
			Email:        b.Email,
			Qty:          b.Qty,
		})
	}
	return targets, nil
}

func (q *broadcastQueriesImpl) History(ctx context.Context) ([]BroadcastHistoryItem, error) {
	return q.history.History(ctx, BroadcastHistoryLimit)
}
