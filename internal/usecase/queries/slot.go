package queries

import (
	"context"
	"time"

	domslot "kayak-console/internal/domain/slot"
	"kayak-console/internal/infra"
	"kayak-console/internal/pkg/clock"
	"kayak-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSlotNotFound = errs.New("slot not found")

type SlotReadStore interface {
	FindInRange(ctx context.Context, from, to time.Time) ([]domslot.Slot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domslot.Slot, error)
	FindOpenFuture(ctx context.Context, after time.Time) ([]domslot.Slot, error)
	FindBookedBetween(ctx context.Context, from, to time.Time) ([]domslot.Slot, error)
}

type SlotQueries interface {
	// Week lists slots for the Monday-started week containing anchor,
	// grouped by business-timezone day.
	Week(ctx context.Context, anchor time.Time) ([]SlotDayGroup, error)
	Day(ctx context.Context, day time.Time) ([]SlotView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
	loc   *time.Location
}

func NewSlotQueries(store SlotReadStore, loc *time.Location) SlotQueries {
	return &slotQueriesImpl{store: store, loc: loc}
}

// StartOfWeek returns the Monday 00:00 of the week containing t, in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := clock.StartOfDay(t, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

func (q *slotQueriesImpl) Week(ctx context.Context, anchor time.Time) ([]SlotDayGroup, error) {
	weekStart := StartOfWeek(anchor, q.loc)
	weekEnd := weekStart.AddDate(0, 0, 7)

	slots, err := q.store.FindInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	return groupSlotsByDay(slots, q.loc), nil
}

func (q *slotQueriesImpl) Day(ctx context.Context, day time.Time) ([]SlotView, error) {
	dayStart := clock.StartOfDay(day, q.loc)
	slots, err := q.store.FindInRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotViewFromDomain(s)
	}
	return views, nil
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	s, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	view := SlotViewFromDomain(*s)
	return &view, nil
}

func groupSlotsByDay(slots []domslot.Slot, loc *time.Location) []SlotDayGroup {
	index := make(map[string]int)
	groups := make([]SlotDayGroup, 0)
	for _, s := range slots {
		local := s.StartTime.In(loc)
		key := local.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, SlotDayGroup{
				DayKey:   key,
				DayLabel: local.Format("Monday, 2 Jan 2006"),
			})
		}
		groups[i].Slots = append(groups[i].Slots, SlotViewFromDomain(s))
	}
	return groups
}

func SlotViewFromDomain(s domslot.Slot) SlotView {
	return SlotView{
		ID:            s.ID,
		TourID:        s.TourID,
		TourName:      s.TourName,
		StartTime:     s.StartTime,
		CapacityTotal: s.CapacityTotal,
		Booked:        s.Booked,
		Held:          s.Held,
		Available:     s.Available(),
		Status:        s.Status.String(),
		PriceOverride: s.PriceOverride,
		IsPeak:        s.IsPeak,
	}
}
