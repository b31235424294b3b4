//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"kayak-console/internal/domain/invoice"
	"kayak-console/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceOn(day time.Time, total, paid float64) invoice.Invoice {
	return builder.NewInvoiceBuilder().
		With(func(b *builder.InvoiceBuilder) { b.TourDate = &day }).
		WithTotalAmount(total).
		WithAmountPaid(paid).
		BuildDomain()
}

func TestInvoiceGroupByDay(t *testing.T) {
	t.Run("groups by business day with footer totals", func(t *testing.T) {
		day := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
		invoices := []invoice.Invoice{
			invoiceOn(day, 1150, 1150),
			invoiceOn(day, 575, 0),
		}
		for i := range invoices {
			invoices[i].BookingCreatedAt = nil
			invoices[i].CreatedAt = nil
		}

		groups := invoice.GroupByDay(invoices, johannesburg)
		require.Len(t, groups, 1)
		g := groups[0]
		assert.Equal(t, "2026-03-14", g.DayKey)
		assert.Equal(t, "Saturday, 14 Mar 2026", g.DayLabel)
		assert.Len(t, g.Invoices, 2)
		assert.Equal(t, "1725.00", g.Total.StringFixed(2))
		assert.Equal(t, "1150.00", g.Paid.StringFixed(2))
		assert.Equal(t, "575.00", g.Due.StringFixed(2))
	})

	t.Run("group order follows input order", func(t *testing.T) {
		early := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
		late := time.Date(2026, 3, 20, 7, 0, 0, 0, time.UTC)
		invoices := []invoice.Invoice{invoiceOn(late, 100, 0), invoiceOn(early, 100, 0)}
		for i := range invoices {
			invoices[i].BookingCreatedAt = nil
			invoices[i].CreatedAt = nil
		}

		groups := invoice.GroupByDay(invoices, johannesburg)
		require.Len(t, groups, 2)
		assert.Equal(t, "2026-03-20", groups[0].DayKey)
		assert.Equal(t, "2026-03-14", groups[1].DayKey)
	})

	t.Run("undated invoices land in an unknown group", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().BuildDomain()
		inv.TourDate = nil
		inv.CreatedAt = nil
		inv.BookingCreatedAt = nil

		groups := invoice.GroupByDay([]invoice.Invoice{inv}, johannesburg)
		require.Len(t, groups, 1)
		assert.Equal(t, "unknown", groups[0].DayKey)
		assert.Equal(t, "Unknown Date", groups[0].DayLabel)
	})
}

func TestInvoiceSort(t *testing.T) {
	jan := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	build := func(bookingCreated, created time.Time) invoice.Invoice {
		inv := builder.NewInvoiceBuilder().BuildDomain()
		inv.TourDate = nil
		inv.BookingCreatedAt = &bookingCreated
		inv.CreatedAt = &created
		return inv
	}

	t.Run("booking date descending is the default ordering", func(t *testing.T) {
		invoices := []invoice.Invoice{build(jan, mar), build(mar, jan), build(feb, feb)}
		invoice.Sort(invoices, invoice.SortBookingDesc)
		assert.Equal(t, mar, *invoices[0].BookingCreatedAt)
		assert.Equal(t, jan, *invoices[2].BookingCreatedAt)
	})

	t.Run("created ascending uses the invoice timestamp", func(t *testing.T) {
		invoices := []invoice.Invoice{build(jan, mar), build(mar, jan), build(feb, feb)}
		invoice.Sort(invoices, invoice.SortCreatedAsc)
		assert.Equal(t, jan, *invoices[0].CreatedAt)
		assert.Equal(t, mar, *invoices[2].CreatedAt)
	})

	t.Run("mode validation", func(t *testing.T) {
		assert.True(t, invoice.SortBookingDesc.IsValid())
		assert.False(t, invoice.SortMode("random").IsValid())
	})
}

func TestOutstandingTotal(t *testing.T) {
	day := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	invoices := []invoice.Invoice{
		invoiceOn(day, 1150, 0),
		invoiceOn(day, 1150, 2000), // overpaid, contributes zero
		invoiceOn(day, 575, 75),
	}
	assert.Equal(t, "1650.00", invoice.OutstandingTotal(invoices).StringFixed(2))
}
