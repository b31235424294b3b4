package queries

import (
	"context"

	dombooking "kayak-console/internal/domain/booking"

	"github.com/shopspring/decimal"
)

// RecentRefundsLimit caps the processed/failed history shown under the queue.
const RecentRefundsLimit = 20

type RefundReadStore interface {
	FindRequested(ctx context.Context) ([]dombooking.Booking, error)
	FindRecentlySettled(ctx context.Context, limit int) ([]dombooking.Booking, error)
}

type RefundQueries interface {
	Queue(ctx context.Context) (*RefundQueueView, error)
}

type refundQueriesImpl struct {
	store RefundReadStore
}

func NewRefundQueries(store RefundReadStore) RefundQueries {
	return &refundQueriesImpl{store: store}
}

func (q *refundQueriesImpl) Queue(ctx context.Context) (*RefundQueueView, error) {
	requested, err := q.store.FindRequested(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := q.store.FindRecentlySettled(ctx, RecentRefundsLimit)
	if err != nil {
		return nil, err
	}

	view := &RefundQueueView{
		Requested:      make([]BookingView, len(requested)),
		TotalRequested: decimal.Zero,
		Recent:         make([]BookingView, len(recent)),
	}
	for i, b := range requested {
		view.Requested[i] = BookingViewFromDomain(b)
		view.TotalRequested = view.TotalRequested.Add(refundAmount(b))
	}
	for i, b := range recent {
		view.Recent[i] = BookingViewFromDomain(b)
	}
	return view, nil
}

// refundAmount is what the queue owes for one booking: the recorded refund
// amount when set, otherwise the full booking total.
func refundAmount(b dombooking.Booking) decimal.Decimal {
	if b.RefundAmount != nil {
		return *b.RefundAmount
	}
	return b.TotalAmount
}
