package queries

import (
	"context"
	"time"

	"kayak-console/internal/domain/booking"
	"kayak-console/internal/infra"
	"kayak-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// DefaultListDays is the date window shown when the caller gives no range.
const DefaultListDays = 7

type BookingReadStore interface {
	FindInRange(ctx context.Context, from, to time.Time, statuses []booking.Status) ([]booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingQueries interface {
	// ListDayGroups returns bookings in [from, to) grouped day then slot
	// with pax and money totals at both levels.
	ListDayGroups(ctx context.Context, from, to time.Time, statuses []booking.Status) ([]BookingDayGroup, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	loc   *time.Location
}

func NewBookingQueries(store BookingReadStore, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{store: store, loc: loc}
}

func (q *bookingQueriesImpl) ListDayGroups(ctx context.Context, from, to time.Time, statuses []booking.Status) ([]BookingDayGroup, error) {
	rows, err := q.store.FindInRange(ctx, from, to, statuses)
	if err != nil {
		return nil, err
	}

	days := booking.GroupByDay(rows, q.loc)
	out := make([]BookingDayGroup, len(days))
	for i, day := range days {
		out[i] = BookingDayGroup{
			DayKey:     day.DayKey,
			DayLabel:   day.DayLabel,
			Slots:      make([]BookingSlotGroup, len(day.Slots)),
			TotalPax:   day.TotalPax,
			TotalPrice: day.TotalPrice,
			TotalPaid:  day.TotalPaid,
			TotalDue:   day.TotalDue,
		}
		for j, slot := range day.Slots {
			group := BookingSlotGroup{
				TimeLabel:  slot.TimeLabel,
				Bookings:   make([]BookingView, len(slot.Bookings)),
				TotalPax:   slot.TotalPax,
				TotalPrice: slot.TotalPrice,
				TotalPaid:  slot.TotalPaid,
				TotalDue:   slot.TotalDue,
			}
			for k, b := range slot.Bookings {
				group.Bookings[k] = BookingViewFromDomain(b)
			}
			out[i].Slots[j] = group
		}
	}
	return out, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	view := BookingViewFromDomain(*b)
	return &view, nil
}

func BookingViewFromDomain(b booking.Booking) BookingView {
	return BookingView{
		ID:           b.ID,
		Reference:    b.Reference(),
		SlotID:       b.SlotID,
		SlotStart:    b.SlotStart,
		TourName:     b.TourName,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Email:        b.Email,
		Qty:          b.Qty,
		TotalAmount:  b.TotalAmount,
		Status:       b.Status,
		RefundStatus: b.RefundStatus,
		RefundAmount: b.RefundAmount,
		CheckoutID:   b.CheckoutID,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
	}
}
