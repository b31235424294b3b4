package invoice

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SortMode orders the invoice list before day-grouping. Booking-date modes
// use EffectiveDate; created modes use the invoice row timestamp.
type SortMode string

const (
	SortBookingDesc SortMode = "booking_desc"
	SortBookingAsc  SortMode = "booking_asc"
	SortCreatedDesc SortMode = "created_desc"
	SortCreatedAsc  SortMode = "created_asc"
)

func (m SortMode) IsValid() bool {
	switch m {
	case SortBookingDesc, SortBookingAsc, SortCreatedDesc, SortCreatedAsc:
		return true
	}
	return false
}

// DayGroup is one rendered section of the invoice list: all invoices whose
// effective date falls on the same business-timezone day, with money totals
// for the footer row. Due is the sum of already clamped balances, so it can
// exceed Total minus Paid when some invoices are overpaid.
type DayGroup struct {
	DayKey   string
	DayLabel string
	Invoices []Invoice
	Total    decimal.Decimal
	Paid     decimal.Decimal
	Due      decimal.Decimal
}

func sortKey(inv Invoice, mode SortMode) int64 {
	switch mode {
	case SortBookingDesc, SortBookingAsc:
		if t := inv.EffectiveDate(); t != nil {
			return t.UnixMilli()
		}
		return 0
	default:
		if inv.CreatedAt != nil {
			return inv.CreatedAt.UnixMilli()
		}
		return 0
	}
}

// Sort orders invoices in place by the given mode. The sort is stable so
// rows without a usable timestamp keep their relative fetch order.
func Sort(invoices []Invoice, mode SortMode) {
	asc := mode == SortBookingAsc || mode == SortCreatedAsc
	sort.SliceStable(invoices, func(i, j int) bool {
		a, b := sortKey(invoices[i], mode), sortKey(invoices[j], mode)
		if asc {
			return a < b
		}
		return a > b
	})
}

// GroupByDay buckets an already sorted invoice list by business-timezone
// day. Group order follows the first appearance of each day in the input,
// and invoices without any usable date land in a trailing "unknown" group.
func GroupByDay(invoices []Invoice, loc *time.Location) []DayGroup {
	index := make(map[string]int)
	groups := make([]DayGroup, 0)
	for _, inv := range invoices {
		key := inv.DayKey(loc)
		if key == "" {
			key = "unknown"
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{
				DayKey:   key,
				DayLabel: inv.DayLabel(loc),
				Total:    decimal.Zero,
				Paid:     decimal.Zero,
				Due:      decimal.Zero,
			})
		}
		pay := inv.Payment()
		groups[i].Invoices = append(groups[i].Invoices, inv)
		groups[i].Total = groups[i].Total.Add(pay.Total)
		groups[i].Paid = groups[i].Paid.Add(pay.AmountPaid)
		groups[i].Due = groups[i].Due.Add(pay.BalanceDue)
	}
	return groups
}

// OutstandingTotal sums the clamped balance due across all invoices.
func OutstandingTotal(invoices []Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.Payment().BalanceDue)
	}
	return total
}
