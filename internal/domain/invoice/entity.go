package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VATRate is the South African standard VAT rate. Totals are stored
// VAT-inclusive; the subtotal is derived by reversing the rate out.
var VATRate = decimal.NewFromFloat(0.15)

var decimalHundred = decimal.NewFromInt(100)

const (
	dateFormatLong = "2 January 2006"
	dayKeyFormat   = "2006-01-02"
	dayLabelFormat = "Monday, 2 Jan 2006"
)

// Invoice mirrors the invoices table. Historical rows are sparse, so most
// columns are nullable and every read goes through a defaulting accessor.
// PaidAmount is a legacy column superseded by AmountPaid.
type Invoice struct {
	ID               uuid.UUID
	InvoiceNumber    *string
	BookingID        *uuid.UUID
	BookingNumber    *string
	BookingReference *string
	CustomerName     *string
	CustomerEmail    *string
	CustomerPhone    *string
	TourName         *string
	TourDate         *time.Time
	Qty              *int
	AdultsQty        *int
	ChildrenQty      *int
	GuidesQty        *int
	TotalAmount      *decimal.Decimal
	AmountPaid       *decimal.Decimal
	PaidAmount       *decimal.Decimal
	PaymentMethod    *string
	Notes            *string
	CreatedAt        *time.Time
	BookingCreatedAt *time.Time
}

// Payment is the derived money view of an invoice. BalanceDue is clamped at
// zero so an overpaid invoice never renders a negative amount owed.
// Subtotal is rounded to cents first and VAT is the remainder, which keeps
// Subtotal + VAT equal to Total to the cent.
type Payment struct {
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	BalanceDue decimal.Decimal
	Subtotal   decimal.Decimal
	VAT        decimal.Decimal
}

// Counts splits the party size for the line-item row. When only the legacy
// single qty column is populated it is reported as adults.
type Counts struct {
	Adults   int
	Children int
	Guides   int
}

func text(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return fallback
	}
	return s
}

func amount(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

// Number returns the printable invoice number, falling back to the first
// eight characters of the row id uppercased.
func (inv Invoice) Number() string {
	return text(inv.InvoiceNumber, strings.ToUpper(inv.ID.String()[:8]))
}

// Ref returns the booking reference shown next to the invoice number.
// Precedence: booking number, legacy booking reference, then booking id.
func (inv Invoice) Ref() string {
	fallback := strings.ToUpper(inv.ID.String()[:8])
	if s := text(inv.BookingNumber, ""); s != "" {
		return s
	}
	if s := text(inv.BookingReference, ""); s != "" {
		return s
	}
	if inv.BookingID != nil {
		return inv.BookingID.String()
	}
	return fallback
}

func (inv Invoice) PartyCounts() Counts {
	c := Counts{}
	switch {
	case inv.AdultsQty != nil:
		c.Adults = *inv.AdultsQty
	case inv.Qty != nil:
		c.Adults = *inv.Qty
	}
	if inv.ChildrenQty != nil {
		c.Children = *inv.ChildrenQty
	}
	if inv.GuidesQty != nil {
		c.Guides = *inv.GuidesQty
	}
	return c
}

func (inv Invoice) Payment() Payment {
	total := amount(inv.TotalAmount)
	paid := amount(inv.AmountPaid)
	if inv.AmountPaid == nil {
		paid = amount(inv.PaidAmount)
	}
	due := total.Sub(paid)
	if due.IsNegative() {
		due = decimal.Zero
	}
	subtotal := total.Div(decimal.NewFromInt(1).Add(VATRate)).Round(2)
	return Payment{
		Total:      total,
		AmountPaid: paid,
		BalanceDue: due,
		Subtotal:   subtotal,
		VAT:        total.Sub(subtotal),
	}
}

// ServiceDescription is the single line-item text, e.g.
// "Sunset Paddle (14 March 2026)".
func (inv Invoice) ServiceDescription(loc *time.Location) string {
	tour := text(inv.TourName, "Kayak booking")
	date := formatDate(coalesceTime(inv.TourDate, inv.CreatedAt), loc)
	return fmt.Sprintf("%s (%s)", tour, date)
}

// EffectiveDate is the timestamp an invoice is sorted and day-grouped by.
// Booking creation wins over the tour date, which wins over invoice creation.
func (inv Invoice) EffectiveDate() *time.Time {
	return coalesceTime(inv.BookingCreatedAt, inv.TourDate, inv.CreatedAt)
}

func (inv Invoice) DayKey(loc *time.Location) string {
	t := inv.EffectiveDate()
	if t == nil {
		return ""
	}
	return t.In(loc).Format(dayKeyFormat)
}

func (inv Invoice) DayLabel(loc *time.Location) string {
	t := inv.EffectiveDate()
	if t == nil {
		return "Unknown Date"
	}
	return t.In(loc).Format(dayLabelFormat)
}

func coalesceTime(ts ...*time.Time) *time.Time {
	for _, t := range ts {
		if t != nil {
			return t
		}
	}
	return nil
}

func formatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format(dateFormatLong)
}

// FormatMoney renders a decimal with comma thousands grouping and two
// decimal places, matching the en-ZA display convention used across the
// console. The currency prefix is added by callers.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if neg {
		return "-" + intPart + frac
	}
	return intPart + frac
}
