//go:build unit

package slot_test

import (
	"testing"

	"kayak-console/internal/domain/slot"

	"github.com/stretchr/testify/assert"
)

func TestAvailable(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		booked   int
		held     int
		want     int
		full     bool
	}{
		{"empty slot", 10, 0, 0, 10, false},
		{"held seats reduce availability", 10, 4, 3, 3, false},
		{"exactly full", 10, 8, 2, 0, true},
		{"overbooked floors at zero", 10, 12, 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := slot.Slot{CapacityTotal: tc.capacity, Booked: tc.booked, Held: tc.held}
			assert.Equal(t, tc.want, s.Available())
			assert.Equal(t, tc.full, s.IsFull())
		})
	}
}

func TestStatusToggle(t *testing.T) {
	assert.Equal(t, slot.StatusClosed, slot.StatusOpen.Toggled())
	assert.Equal(t, slot.StatusOpen, slot.StatusClosed.Toggled())
	assert.True(t, slot.StatusOpen.IsValid())
	assert.False(t, slot.Status("PAUSED").IsValid())
}
