//go:build unit

package invoice_test

import (
	"strings"
	"testing"
	"time"

	"kayak-console/internal/domain/invoice"
	"kayak-console/tests/common/builder"

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

func TestPayment(t *testing.T) {
	t.Run("reverses VAT out of an inclusive total", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithTotalAmount(1150).WithAmountPaid(0).BuildDomain()
		pay := inv.Payment()

		assert.Equal(t, "1150.00", pay.Total.StringFixed(2))
		assert.Equal(t, "1000.00", pay.Subtotal.StringFixed(2))
		assert.Equal(t, "150.00", pay.VAT.StringFixed(2))
		assert.Equal(t, "1150.00", pay.BalanceDue.StringFixed(2))
	})

	t.Run("subtotal plus VAT equals total to the cent", func(t *testing.T) {
		for _, total := range []float64{1234.56, 0.01, 99.99, 1150, 333.33} {
			inv := builder.NewInvoiceBuilder().WithTotalAmount(total).BuildDomain()
			pay := inv.Payment()
			sum := pay.Subtotal.Add(pay.VAT)
			assert.True(t, sum.Equal(pay.Total), "total %v: %s + %s != %s", total, pay.Subtotal, pay.VAT, pay.Total)
		}
	})

	t.Run("balance due clamps at zero when overpaid", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithTotalAmount(1150).WithAmountPaid(1500).BuildDomain()
		assert.True(t, inv.Payment().BalanceDue.IsZero())
	})

	t.Run("legacy paid_amount column is honoured", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithTotalAmount(500).BuildDomain()
		inv.AmountPaid = nil
		legacy := decimal.NewFromInt(200)
		inv.PaidAmount = &legacy

		pay := inv.Payment()
		assert.Equal(t, "200.00", pay.AmountPaid.StringFixed(2))
		assert.Equal(t, "300.00", pay.BalanceDue.StringFixed(2))
	})

	t.Run("missing amounts default to zero", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithoutAmounts().BuildDomain()
		pay := inv.Payment()
		assert.True(t, pay.Total.IsZero())
		assert.True(t, pay.BalanceDue.IsZero())
	})
}

func TestDefaulting(t *testing.T) {
	t.Run("invoice number falls back to uppercased id prefix", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithoutInvoiceNumber().BuildDomain()
		got := inv.Number()
		assert.Len(t, got, 8)
		assert.Equal(t, strings.ToUpper(inv.ID.String()[:8]), got)
	})

	t.Run("whitespace invoice number falls back too", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithInvoiceNumber("   ").BuildDomain()
		assert.Equal(t, strings.ToUpper(inv.ID.String()[:8]), inv.Number())
	})

	t.Run("booking ref precedence", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().BuildDomain()
		require.NotNil(t, inv.BookingID)
		assert.Equal(t, inv.BookingID.String(), inv.Ref())

		number := "BK-100"
		inv.BookingNumber = &number
		assert.Equal(t, "BK-100", inv.Ref())

		inv.BookingNumber = nil
		legacy := "REF-7"
		inv.BookingReference = &legacy
		assert.Equal(t, "REF-7", inv.Ref())
	})

	t.Run("service description uses tour fallback", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithoutTourName().BuildDomain()
		desc := inv.ServiceDescription(johannesburg)
		assert.True(t, strings.HasPrefix(desc, "Kayak booking ("), "got %q", desc)
	})

	t.Run("party counts fall back to legacy qty as adults", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().BuildDomain()
		inv.AdultsQty = nil
		qty := 4
		inv.Qty = &qty

		counts := inv.PartyCounts()
		assert.Equal(t, 4, counts.Adults)
		assert.Equal(t, 0, counts.Children)
		assert.Equal(t, 0, counts.Guides)
	})
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"1150", "1,150.00"},
		{"1234567.5", "1,234,567.50"},
		{"-2500.75", "-2,500.75"},
		{"250.5", "250.50"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, invoice.FormatMoney(d), "input %s", tc.in)
	}
}

func TestEffectiveDate(t *testing.T) {
	inv := builder.NewInvoiceBuilder().BuildDomain()
	bookingCreated := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)
	inv.BookingCreatedAt = &bookingCreated

	require.NotNil(t, inv.EffectiveDate())
	assert.Equal(t, bookingCreated, *inv.EffectiveDate())

	inv.BookingCreatedAt = nil
	assert.Equal(t, *inv.TourDate, *inv.EffectiveDate())

	inv.TourDate = nil
	assert.Equal(t, *inv.CreatedAt, *inv.EffectiveDate())

	inv.CreatedAt = nil
	assert.Nil(t, inv.EffectiveDate())
	assert.Equal(t, "", inv.DayKey(johannesburg))
	assert.Equal(t, "Unknown Date", inv.DayLabel(johannesburg))
}
