package commands

import (
	"context"

	"kayak-console/internal/infra"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

type InvoiceCommands interface {
	// Resend queues the pro forma mailer again for an already issued invoice.
	Resend(ctx context.Context, invoiceID uuid.UUID) error
}

type invoiceCommandsImpl struct {
	store    queries.InvoiceReadStore
	notifier BookingNotifier
}

func NewInvoiceCommands(store queries.InvoiceReadStore, notifier BookingNotifier) InvoiceCommands {
	return &invoiceCommandsImpl{store: store, notifier: notifier}
}

func (c *invoiceCommandsImpl) Resend(ctx context.Context, invoiceID uuid.UUID) error {
	inv, err := c.store.FindByID(ctx, invoiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvoiceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.notifier.SendInvoice(ctx, &inv.ID, nil, inv.Number(), true)
}
