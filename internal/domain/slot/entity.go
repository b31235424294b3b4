package slot

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

// Toggled returns the opposite lifecycle state. The open/closed toggle is
// independent of capacity math: a full slot can be OPEN and an empty one
// CLOSED.
func (s Status) Toggled() Status {
	if s == StatusOpen {
		return StatusClosed
	}
	return StatusOpen
}

// Slot is a bookable, capacity-bounded time instance of a tour. Held counts
// seats provisionally reserved but not yet confirmed; they reduce
// availability without counting as booked.
type Slot struct {
	ID            uuid.UUID
	TourID        uuid.UUID
	TourName      string
	StartTime     time.Time
	CapacityTotal int
	Booked        int
	Held          int
	Status        Status
	PriceOverride *decimal.Decimal
	IsPeak        bool
}

// Available returns the number of seats still sellable, floored at zero for
// display. Overbooked slots show 0, not a negative count.
func (s Slot) Available() int {
	avail := s.CapacityTotal - s.Booked - s.Held
	if avail < 0 {
		return 0
	}
	return avail
}

func (s Slot) IsFull() bool {
	return s.CapacityTotal-s.Booked-s.Held <= 0
}

func (s Slot) IsOpen() bool {
	return s.Status == StatusOpen
}
