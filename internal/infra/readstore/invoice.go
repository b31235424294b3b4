package readstore

import (
	"context"

	dominvoice "kayak-console/internal/domain/invoice"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/infra/psql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var invoiceColumns = []string{
	"i.id",
	"i.invoice_number",
	"i.booking_id",
	"i.booking_number",
	"i.booking_reference",
	"i.customer_name",
	"i.customer_email",
	"i.customer_phone",
	"i.tour_name",
	"i.tour_date",
	"i.qty",
	"i.adults_qty",
	"i.children_qty",
	"i.guides_qty",
	"i.total_amount",
	"i.amount_paid",
	"i.paid_amount",
	"i.payment_method",
	"i.notes",
	"i.created_at",
	"b.created_at AS booking_created_at",
}

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(dbtx db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: dbtx}
}

func invoiceSelect() sq.SelectBuilder {
	return psql.Select(invoiceColumns...).
		From("invoices i").
		LeftJoin("bookings b ON b.id = i.booking_id")
}

func (r *InvoiceReadStore) FindRecent(ctx context.Context, limit int) ([]dominvoice.Invoice, error) {
	sql, args, err := invoiceSelect().
		OrderBy("i.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build invoices query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find recent invoices", err)
	}
	defer rows.Close()

	return scanInvoices(rows)
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*dominvoice.Invoice, error) {
	sql, args, err := invoiceSelect().Where(sq.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build invoice query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find invoice by id", err)
	}
	defer rows.Close()

	invoices, err := scanInvoices(rows)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, infra.WrapRepoErr("invoice not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &invoices[0], nil
}

func scanInvoices(rows pgx.Rows) ([]dominvoice.Invoice, error) {
	out := make([]dominvoice.Invoice, 0)
	for rows.Next() {
		var (
			inv        dominvoice.Invoice
			total      decimal.NullDecimal
			amountPaid decimal.NullDecimal
			paidAmount decimal.NullDecimal
		)
		err := rows.Scan(
			&inv.ID,
			&inv.InvoiceNumber,
			&inv.BookingID,
			&inv.BookingNumber,
			&inv.BookingReference,
			&inv.CustomerName,
			&inv.CustomerEmail,
			&inv.CustomerPhone,
			&inv.TourName,
			&inv.TourDate,
			&inv.Qty,
			&inv.AdultsQty,
			&inv.ChildrenQty,
			&inv.GuidesQty,
			&total,
			&amountPaid,
			&paidAmount,
			&inv.PaymentMethod,
			&inv.Notes,
			&inv.CreatedAt,
			&inv.BookingCreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}
		if total.Valid {
			d := total.Decimal
			inv.TotalAmount = &d
		}
		if amountPaid.Valid {
			d := amountPaid.Decimal
			inv.AmountPaid = &d
		}
		if paidAmount.Valid {
			d := paidAmount.Decimal
			inv.PaidAmount = &d
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoice rows", err)
	}
	return out, nil
}
