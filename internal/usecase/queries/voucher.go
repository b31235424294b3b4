package queries

import (
	"context"
	"strings"
	"time"
)

// VoucherListLimit caps one listing fetch.
const VoucherListLimit = 300

type VoucherReadStore interface {
	FindRecent(ctx context.Context, limit int) ([]VoucherView, error)
}

type VoucherFilters struct {
	ExactDay string // business-timezone day key of created_at
	Search   string // free text over code, names, emails and tour
}

type VoucherQueries interface {
	List(ctx context.Context, filters VoucherFilters) ([]VoucherDayGroup, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
	loc   *time.Location
}

func NewVoucherQueries(store VoucherReadStore, loc *time.Location) VoucherQueries {
	return &voucherQueriesImpl{store: store, loc: loc}
}

func (q *voucherQueriesImpl) List(ctx context.Context, filters VoucherFilters) ([]VoucherDayGroup, error) {
	vouchers, err := q.store.FindRecent(ctx, VoucherListLimit)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	index := make(map[string]int)
	groups := make([]VoucherDayGroup, 0)
	for _, v := range vouchers {
		local := v.CreatedAt.In(q.loc)
		key := local.Format("2006-01-02")
		if filters.ExactDay != "" && key != filters.ExactDay {
			continue
		}
		if search != "" && !voucherMatches(v, search) {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, VoucherDayGroup{
				DayKey:   key,
				DayLabel: local.Format("Monday, 2 Jan 2006"),
			})
		}
		groups[i].Vouchers = append(groups[i].Vouchers, v)
	}
	return groups, nil
}

func voucherMatches(v VoucherView, search string) bool {
	fields := []string{v.Code}
	for _, p := range []*string{v.TourName, v.RecipientName, v.RecipientEmail, v.BuyerName, v.BuyerEmail} {
		if p != nil {
			fields = append(fields, *p)
		}
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
