//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"kayak-console/internal/domain/booking"
	"kayak-console/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var johannesburg = mustLoadLocation("Africa/Johannesburg")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestGroupByDay(t *testing.T) {
	t.Run("mixed statuses on one slot", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC) // 09:00 SAST
		bookings := []booking.Booking{
			builder.NewBookingBuilder().WithSlotStart(start).WithQty(2).WithTotalAmount(500).WithStatus(booking.StatusPaid).BuildDomain(),
			builder.NewBookingBuilder().WithSlotStart(start).WithQty(1).WithTotalAmount(250).WithStatus(booking.StatusPending).BuildDomain(),
		}

		days := booking.GroupByDay(bookings, johannesburg)
		require.Len(t, days, 1)
		require.Len(t, days[0].Slots, 1)

		day := days[0]
		assert.Equal(t, "2026-03-14", day.DayKey)
		assert.Equal(t, "Saturday, 14 Mar 2026", day.DayLabel)

		slot := day.Slots[0]
		assert.Equal(t, "09:00", slot.TimeLabel)
		assert.Equal(t, 3, slot.TotalPax)
		assert.True(t, slot.TotalPrice.Equal(decimal.NewFromInt(750)))
		assert.True(t, slot.TotalPaid.Equal(decimal.NewFromInt(500)))
		assert.True(t, slot.TotalDue.Equal(decimal.NewFromInt(250)))
	})

	t.Run("business timezone decides the day bucket", func(t *testing.T) {
		// 22:30 UTC is already the next day in Johannesburg.
		start := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)
		bookings := []booking.Booking{
			builder.NewBookingBuilder().WithSlotStart(start).BuildDomain(),
		}

		days := booking.GroupByDay(bookings, johannesburg)
		require.Len(t, days, 1)
		assert.Equal(t, "2026-03-15", days[0].DayKey)
		assert.Equal(t, "00:30", days[0].Slots[0].TimeLabel)
	})

	t.Run("bookings without a slot start are dropped", func(t *testing.T) {
		bookings := []booking.Booking{
			builder.NewBookingBuilder().WithoutSlotStart().BuildDomain(),
			builder.NewBookingBuilder().BuildDomain(),
		}

		days := booking.GroupByDay(bookings, johannesburg)
		require.Len(t, days, 1)
		assert.Equal(t, 1, len(days[0].Slots[0].Bookings))
	})

	t.Run("days and slots are sorted ascending", func(t *testing.T) {
		day1Morning := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
		day1Noon := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		day2 := time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)
		bookings := []booking.Booking{
			builder.NewBookingBuilder().WithSlotStart(day2).BuildDomain(),
			builder.NewBookingBuilder().WithSlotStart(day1Noon).BuildDomain(),
			builder.NewBookingBuilder().WithSlotStart(day1Morning).BuildDomain(),
		}

		days := booking.GroupByDay(bookings, johannesburg)
		require.Len(t, days, 2)
		assert.Equal(t, "2026-03-14", days[0].DayKey)
		assert.Equal(t, "2026-03-15", days[1].DayKey)
		require.Len(t, days[0].Slots, 2)
		assert.Equal(t, "09:00", days[0].Slots[0].TimeLabel)
		assert.Equal(t, "12:00", days[0].Slots[1].TimeLabel)
	})

	t.Run("identical start times merge across slot ids", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
		bookings := []booking.Booking{
			builder.NewBookingBuilder().WithSlotStart(start).WithTourName("Sunset Paddle").BuildDomain(),
			builder.NewBookingBuilder().WithSlotStart(start).WithTourName("Morning Paddle").BuildDomain(),
		}

		days := booking.GroupByDay(bookings, johannesburg)
		require.Len(t, days, 1)
		require.Len(t, days[0].Slots, 1)
		assert.Len(t, days[0].Slots[0].Bookings, 2)
	})

	t.Run("due is not clamped when paid exceeds billed", func(t *testing.T) {
		// A negative correction row reduces billed below what is paid.
		start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
		bookings := []booking.Booking{
			builder.NewBookingBuilder().WithSlotStart(start).WithTotalAmount(300).WithStatus(booking.StatusPaid).BuildDomain(),
			builder.NewBookingBuilder().WithSlotStart(start).WithTotalAmount(-50).WithStatus(booking.StatusPending).BuildDomain(),
		}

		days := booking.GroupByDay(bookings, johannesburg)
		require.Len(t, days, 1)
		slot := days[0].Slots[0]
		assert.True(t, slot.TotalPrice.Equal(decimal.NewFromInt(250)))
		assert.True(t, slot.TotalPaid.Equal(decimal.NewFromInt(300)))
		assert.True(t, slot.TotalDue.Equal(decimal.NewFromInt(-50)), "due was %s", slot.TotalDue)
	})

	t.Run("output is independent of input order", func(t *testing.T) {
		starts := []time.Time{
			time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC),
		}
		var forward, reversed []booking.Booking
		for i, s := range starts {
			b := builder.NewBookingBuilder().WithSlotStart(s).WithQty(i + 1).WithTotalAmount(int64(250 * (i + 1))).BuildDomain()
			forward = append(forward, b)
		}
		for i := len(forward) - 1; i >= 0; i-- {
			reversed = append(reversed, forward[i])
		}

		got := booking.GroupByDay(forward, johannesburg)
		want := booking.GroupByDay(reversed, johannesburg)
		// Inside one slot the original list order is preserved, so compare
		// structure and totals rather than leaf ordering.
		require.Equal(t, len(want), len(got))
		for i := range got {
			assert.Equal(t, want[i].DayKey, got[i].DayKey)
			if diff := cmp.Diff(want[i].TotalPrice, got[i].TotalPrice, decimalCmp); diff != "" {
				t.Errorf("day %s billed mismatch (-want +got):\n%s", got[i].DayKey, diff)
			}
			assert.Equal(t, want[i].TotalPax, got[i].TotalPax)
		}
	})

	t.Run("day totals equal the sum of slot totals", func(t *testing.T) {
		bookings := []booking.Booking{
			builder.NewBookingBuilder().WithSlotStart(time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)).WithQty(2).WithTotalAmount(500).WithStatus(booking.StatusPaid).BuildDomain(),
			builder.NewBookingBuilder().WithSlotStart(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)).WithQty(4).WithTotalAmount(1000).WithStatus(booking.StatusPending).BuildDomain(),
			builder.NewBookingBuilder().WithSlotStart(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)).WithQty(1).WithTotalAmount(250).WithStatus(booking.StatusConfirmed).BuildDomain(),
		}

		days := booking.GroupByDay(bookings, johannesburg)
		require.Len(t, days, 1)
		day := days[0]

		pax := 0
		price, paid, due := decimal.Zero, decimal.Zero, decimal.Zero
		for _, slot := range day.Slots {
			leafPax := 0
			for _, b := range slot.Bookings {
				leafPax += b.Qty
			}
			assert.Equal(t, leafPax, slot.TotalPax)
			pax += slot.TotalPax
			price = price.Add(slot.TotalPrice)
			paid = paid.Add(slot.TotalPaid)
			due = due.Add(slot.TotalDue)
		}
		assert.Equal(t, pax, day.TotalPax)
		assert.True(t, price.Equal(day.TotalPrice))
		assert.True(t, paid.Equal(day.TotalPaid))
		assert.True(t, due.Equal(day.TotalDue))
		assert.True(t, day.TotalDue.Equal(day.TotalPrice.Sub(day.TotalPaid)))
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, booking.GroupByDay(nil, johannesburg))
	})
}

func TestStatus(t *testing.T) {
	t.Run("paid statuses", func(t *testing.T) {
		paid := map[booking.Status]bool{
			booking.StatusPaid:      true,
			booking.StatusConfirmed: true,
			booking.StatusCompleted: true,
			booking.StatusPending:   false,
			booking.StatusHeld:      false,
			booking.StatusCancelled: false,
		}
		for status, want := range paid {
			assert.Equal(t, want, status.IsPaid(), "status %s", status)
		}
	})

	t.Run("all statuses are valid", func(t *testing.T) {
		for _, status := range booking.AllStatuses {
			assert.True(t, status.IsValid())
		}
		assert.False(t, booking.Status("REFUNDED").IsValid())
	})
}

func TestBookingReference(t *testing.T) {
	b := builder.NewBookingBuilder().BuildDomain()
	ref := b.Reference()
	assert.Len(t, ref, 8)
	assert.Equal(t, strings.ToUpper(b.ID.String()[:8]), ref)
}
