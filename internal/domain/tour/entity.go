package tour

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tour is the catalogue entry a slot instantiates. PeakPrice, when set,
// takes precedence over BasePrice for new bookings; slot-level overrides
// beat both.
type Tour struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	BasePrice       *decimal.Decimal
	PeakPrice       *decimal.Decimal
	DefaultCapacity int
	Active          bool
}

// UnitPrice resolves the per-person price for a slot of this tour.
// Precedence: slot override, then peak price, then base price. A tour with
// no usable price resolves to zero rather than failing, so a misconfigured
// catalogue row never blocks a booking screen.
func (t Tour) UnitPrice(override *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	if t.PeakPrice != nil {
		return *t.PeakPrice
	}
	if t.BasePrice != nil {
		return *t.BasePrice
	}
	return decimal.Zero
}
