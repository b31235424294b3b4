//go:build unit

package tour_test

import (
	"testing"

	"kayak-console/internal/domain/tour"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestUnitPrice(t *testing.T) {
	base := tour.Tour{Name: "Sunset Paddle", BasePrice: dec(250), PeakPrice: dec(300)}

	t.Run("slot override wins", func(t *testing.T) {
		assert.True(t, base.UnitPrice(dec(400)).Equal(decimal.NewFromInt(400)))
	})

	t.Run("peak price beats base", func(t *testing.T) {
		assert.True(t, base.UnitPrice(nil).Equal(decimal.NewFromInt(300)))
	})

	t.Run("base price when no peak set", func(t *testing.T) {
		noPeak := tour.Tour{BasePrice: dec(250)}
		assert.True(t, noPeak.UnitPrice(nil).Equal(decimal.NewFromInt(250)))
	})

	t.Run("unpriced tour resolves to zero", func(t *testing.T) {
		assert.True(t, tour.Tour{}.UnitPrice(nil).IsZero())
	})
}
