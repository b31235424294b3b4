package queries

import (
	"context"
	"time"

	dominvoice "kayak-console/internal/domain/invoice"
	"kayak-console/internal/infra"
	"kayak-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

// InvoiceListLimit caps one listing fetch; the console shows recent history,
// not a full archive.
const InvoiceListLimit = 200

type InvoiceReadStore interface {
	// FindRecent returns invoices newest-created first, each enriched with
	// the created_at of its booking when the booking still exists.
	FindRecent(ctx context.Context, limit int) ([]dominvoice.Invoice, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dominvoice.Invoice, error)
}

type InvoiceFilters struct {
	Sort     dominvoice.SortMode
	ExactDay string // business-timezone day key, empty for no filter
}

type InvoiceQueries interface {
	List(ctx context.Context, filters InvoiceFilters) (*InvoiceListView, error)
	// Render returns the pro forma HTML document and its download name.
	Render(ctx context.Context, id uuid.UUID) (html string, filename string, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*dominvoice.Invoice, error)
}

type invoiceQueriesImpl struct {
	store InvoiceReadStore
	loc   *time.Location
}

func NewInvoiceQueries(store InvoiceReadStore, loc *time.Location) InvoiceQueries {
	return &invoiceQueriesImpl{store: store, loc: loc}
}

func (q *invoiceQueriesImpl) List(ctx context.Context, filters InvoiceFilters) (*InvoiceListView, error) {
	invoices, err := q.store.FindRecent(ctx, InvoiceListLimit)
	if err != nil {
		return nil, err
	}

	// The outstanding figure covers the whole fetched page, before the
	// exact-day filter narrows the listing.
	outstanding := dominvoice.OutstandingTotal(invoices)

	sortMode := filters.Sort
	if !sortMode.IsValid() {
		sortMode = dominvoice.SortBookingDesc
	}
	dominvoice.Sort(invoices, sortMode)

	if filters.ExactDay != "" {
		filtered := invoices[:0]
		for _, inv := range invoices {
			if inv.DayKey(q.loc) == filters.ExactDay {
				filtered = append(filtered, inv)
			}
		}
		invoices = filtered
	}

	groups := dominvoice.GroupByDay(invoices, q.loc)
	days := make([]InvoiceDayGroup, len(groups))
	for i, g := range groups {
		days[i] = InvoiceDayGroup{
			DayKey:   g.DayKey,
			DayLabel: g.DayLabel,
			Invoices: g.Invoices,
			Total:    g.Total,
			Paid:     g.Paid,
			Due:      g.Due,
		}
	}

	return &InvoiceListView{Days: days, Outstanding: outstanding}, nil
}

func (q *invoiceQueriesImpl) Render(ctx context.Context, id uuid.UUID) (string, string, error) {
	inv, err := q.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	return dominvoice.RenderProForma(*inv, q.loc), dominvoice.FileName(*inv), nil
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*dominvoice.Invoice, error) {
	inv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}
