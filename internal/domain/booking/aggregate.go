package booking

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dayKeyFormat  = "2006-01-02"
	timeKeyFormat = "15:04"
	dayLabelLong  = "Monday, 2 Jan 2006"
)

// SlotGroup aggregates the bookings sharing one formatted time-of-day within a
// day. Bookings with the same formatted time merge into one group even when
// they reference different slot rows; the drill-down table shows departures,
// not slot identities.
type SlotGroup struct {
	TimeLabel  string
	SortKey    string
	Bookings   []Booking
	TotalPax   int
	TotalPrice decimal.Decimal
	TotalPaid  decimal.Decimal
	TotalDue   decimal.Decimal
}

// DayGroup aggregates the slot groups of one calendar day in the business
// timezone, with the same four totals summed across its slots.
type DayGroup struct {
	DayKey     string
	DayLabel   string
	Slots      []SlotGroup
	TotalPax   int
	TotalPrice decimal.Decimal
	TotalPaid  decimal.Decimal
	TotalDue   decimal.Decimal
}

// DayKey derives the calendar-date grouping key for t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyFormat)
}

// TimeKey derives the 24h time-of-day grouping key for t in loc.
func TimeKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeKeyFormat)
}

// GroupByDay builds the day -> time-of-day -> bookings tree. Bookings without
// a slot start time are dropped. Day buckets sort ascending by date, slot
// buckets ascending by time label, and bookings keep their input order within
// a bucket. The result depends only on the input slice and loc, so repeated
// runs over the same input produce identical output.
func GroupByDay(bookings []Booking, loc *time.Location) []DayGroup {
	type slotBucket struct {
		timeKey  string
		bookings []Booking
	}
	type dayBucket struct {
		dayKey string
		start  time.Time // first-seen start time, used for the day label
		slots  []*slotBucket
		index  map[string]*slotBucket
	}

	buckets := make(map[string]*dayBucket)
	order := make([]string, 0)

	for _, b := range bookings {
		if b.SlotStart == nil {
			continue
		}
		dk := DayKey(*b.SlotStart, loc)
		tk := TimeKey(*b.SlotStart, loc)

		day, ok := buckets[dk]
		if !ok {
			day = &dayBucket{
				dayKey: dk,
				start:  *b.SlotStart,
				index:  make(map[string]*slotBucket),
			}
			buckets[dk] = day
			order = append(order, dk)
		}

		slot, ok := day.index[tk]
		if !ok {
			slot = &slotBucket{timeKey: tk}
			day.index[tk] = slot
			day.slots = append(day.slots, slot)
		}
		slot.bookings = append(slot.bookings, b)
	}

	sort.Strings(order)

	days := make([]DayGroup, 0, len(order))
	for _, dk := range order {
		day := buckets[dk]

		sort.Slice(day.slots, func(i, j int) bool {
			return day.slots[i].timeKey < day.slots[j].timeKey
		})

		group := DayGroup{
			DayKey:     day.dayKey,
			DayLabel:   day.start.In(loc).Format(dayLabelLong),
			Slots:      make([]SlotGroup, 0, len(day.slots)),
			TotalPrice: decimal.Zero,
			TotalPaid:  decimal.Zero,
			TotalDue:   decimal.Zero,
		}

		for _, slot := range day.slots {
			sg := sumSlot(slot.timeKey, slot.bookings)
			group.TotalPax += sg.TotalPax
			group.TotalPrice = group.TotalPrice.Add(sg.TotalPrice)
			group.TotalPaid = group.TotalPaid.Add(sg.TotalPaid)
			group.Slots = append(group.Slots, sg)
		}
		group.TotalDue = group.TotalPrice.Sub(group.TotalPaid)

		days = append(days, group)
	}

	return days
}

func sumSlot(timeKey string, bookings []Booking) SlotGroup {
	sg := SlotGroup{
		TimeLabel:  timeKey,
		SortKey:    timeKey,
		Bookings:   bookings,
		TotalPrice: decimal.Zero,
		TotalPaid:  decimal.Zero,
	}
	for _, b := range bookings {
		sg.TotalPax += b.Qty
		sg.TotalPrice = sg.TotalPrice.Add(b.TotalAmount)
		if b.Status.IsPaid() {
			sg.TotalPaid = sg.TotalPaid.Add(b.TotalAmount)
		}
	}
	// Intentionally unclamped: a data correction can leave paid above billed.
	sg.TotalDue = sg.TotalPrice.Sub(sg.TotalPaid)
	return sg
}
