package queries

import (
	"context"
	"time"

	dombooking "kayak-console/internal/domain/booking"
	"kayak-console/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

type AlertReadStore interface {
	CountRefundsRequested(ctx context.Context) (int, error)
	CountConversationsWaiting(ctx context.Context) (int, error)
}

type DashboardQueries interface {
	// Today returns the day-of-operations view: the manifest of bookings
	// departing today, headline stats and the alert counters.
	Today(ctx context.Context) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	bookings BookingReadStore
	alerts   AlertReadStore
	clock    clock.Clock
	loc      *time.Location
}

func NewDashboardQueries(bookings BookingReadStore, alerts AlertReadStore, clk clock.Clock, loc *time.Location) DashboardQueries {
	return &dashboardQueriesImpl{bookings: bookings, alerts: alerts, clock: clk, loc: loc}
}

// Manifest statuses: customers expected on the water. PENDING and HELD are
// not boarded; CANCELLED obviously not.
var manifestStatuses = []dombooking.Status{
	dombooking.StatusPaid,
	dombooking.StatusConfirmed,
	dombooking.StatusCompleted,
}

func (q *dashboardQueriesImpl) Today(ctx context.Context) (*DashboardView, error) {
	now := q.clock.Now().In(q.loc)
	dayStart := clock.StartOfDay(now, q.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := q.bookings.FindInRange(ctx, dayStart, dayEnd, manifestStatuses)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		DayLabel: now.Format("Monday, 2 Jan 2006"),
		Manifest: make([]ManifestEntry, 0, len(rows)),
		Stats:    DashboardStats{RevenueToday: decimal.Zero},
	}

	for _, day := range dombooking.GroupByDay(rows, q.loc) {
		for _, slot := range day.Slots {
			for _, b := range slot.Bookings {
				view.Manifest = append(view.Manifest, ManifestEntry{
					BookingID:    b.ID,
					TimeLabel:    slot.TimeLabel,
					TourName:     b.TourName,
					CustomerName: b.CustomerName,
					Phone:        b.Phone,
					Qty:          b.Qty,
					TotalAmount:  b.TotalAmount,
					Status:       b.Status,
				})
			}
		}
	}

	view.Stats.BookingsToday = len(view.Manifest)
	for _, entry := range view.Manifest {
		view.Stats.PaxToday += entry.Qty
		view.Stats.RevenueToday = view.Stats.RevenueToday.Add(entry.TotalAmount)
	}

	refunds, err := q.alerts.CountRefundsRequested(ctx)
	if err != nil {
		return nil, err
	}
	waiting, err := q.alerts.CountConversationsWaiting(ctx)
	if err != nil {
		return nil, err
	}
	view.Alerts = DashboardAlerts{RefundsRequested: refunds, ConversationsWaiting: waiting}

	return view, nil
}
