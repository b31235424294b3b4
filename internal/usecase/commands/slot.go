package commands

import (
	"context"

	domslot "kayak-console/internal/domain/slot"
	"kayak-console/internal/infra"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/queries"
	"kayak-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotCommands interface {
	// Toggle flips the slot between OPEN and CLOSED and returns the new
	// status. Existing bookings are untouched.
	Toggle(ctx context.Context, id uuid.UUID) (domslot.Status, error)
}

type slotCommandsImpl struct {
	slotRepo  SlotWriteRepository
	slotStore queries.SlotReadStore
	db        *pgxpool.Pool
}

func NewSlotCommands(slotRepo SlotWriteRepository, slotStore queries.SlotReadStore, db *pgxpool.Pool) SlotCommands {
	return &slotCommandsImpl{
		slotRepo:  slotRepo,
		slotStore: slotStore,
		db:        db,
	}
}

func (c *slotCommandsImpl) Toggle(ctx context.Context, id uuid.UUID) (domslot.Status, error) {
	slot, err := c.slotStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrSlotNotFound
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	next := slot.Status.Toggled()
	_, err = shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.slotRepo.SetStatus(ctx, tx, id, next)
	})
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return next, nil
}
