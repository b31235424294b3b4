package commands

import (
	"context"
	"log/slog"
	"strings"

	domslot "kayak-console/internal/domain/slot"
	"kayak-console/internal/infra/db"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/queries"
	"kayak-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmptyMessage   = errs.New("broadcast message is empty")
	ErrNoSlotsChosen  = errs.New("no slots selected")
	ErrMissingReason  = errs.New("cancellation reason is required")
	ErrBroadcastFatal = errs.New("broadcast delivery failed")
)

type BroadcastResult struct {
	Recipients int
	SlotCount  int
}

// BroadcastSender is the messaging backend for slot-targeted broadcasts and
// weather cancellations.
type BroadcastSender interface {
	SendBroadcast(ctx context.Context, message string, slotIDs []uuid.UUID) error
	WeatherCancel(ctx context.Context, slotIDs []uuid.UUID, reason string) error
}

type BroadcastCommands interface {
	// Send delivers a message to every paid or confirmed customer of the
	// selected slots and records it in the broadcast history.
	Send(ctx context.Context, message string, slotIDs []uuid.UUID) (*BroadcastResult, error)
	// WeatherCancel cancels the selected slots for weather. The messaging
	// backend notifies the customers and queues their refunds; locally the
	// slots are closed and the action is recorded.
	WeatherCancel(ctx context.Context, slotIDs []uuid.UUID, reason string) (*BroadcastResult, error)
}

type broadcastCommandsImpl struct {
	broadcastRepo BroadcastWriteRepository
	slotRepo      SlotWriteRepository
	targets       queries.BroadcastTargetStore
	sender        BroadcastSender
	db            *pgxpool.Pool
	logger        *slog.Logger
}

func NewBroadcastCommands(
	broadcastRepo BroadcastWriteRepository,
	slotRepo SlotWriteRepository,
	targets queries.BroadcastTargetStore,
	sender BroadcastSender,
	db *pgxpool.Pool,
	logger *slog.Logger,
) BroadcastCommands {
	return &broadcastCommandsImpl{
		broadcastRepo: broadcastRepo,
		slotRepo:      slotRepo,
		targets:       targets,
		sender:        sender,
		db:            db,
		logger:        logger,
	}
}

func (c *broadcastCommandsImpl) Send(ctx context.Context, message string, slotIDs []uuid.UUID) (*BroadcastResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len(slotIDs) == 0 {
		return nil, ErrNoSlotsChosen
	}

	recipients, err := c.targets.FindTargets(ctx, slotIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.sender.SendBroadcast(ctx, message, slotIDs); err != nil {
		return nil, errs.Mark(err, ErrBroadcastFatal)
	}

	c.recordHistory(ctx, "broadcast_targeted", message, slotIDs, len(recipients))

	return &BroadcastResult{
		Recipients: len(recipients),
		SlotCount:  len(slotIDs),
	}, nil
}

func (c *broadcastCommandsImpl) WeatherCancel(ctx context.Context, slotIDs []uuid.UUID, reason string) (*BroadcastResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrMissingReason
	}
	if len(slotIDs) == 0 {
		return nil, ErrNoSlotsChosen
	}

	recipients, err := c.targets.FindTargets(ctx, slotIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.sender.WeatherCancel(ctx, slotIDs, reason); err != nil {
		return nil, errs.Mark(err, ErrBroadcastFatal)
	}

	_, err = shared.WithDefaultRetry(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		for _, slotID := range slotIDs {
			if err := c.slotRepo.SetStatus(ctx, tx, slotID, domslot.StatusClosed); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		// The customers were already told; surface the writeback failure
		// without pretending the cancellation did not happen.
		c.logger.Error("weather cancel slot closure failed",
			"slot_ids", slotIDs, "error", err)
	}

	c.recordHistory(ctx, "weather_cancel", reason, slotIDs, len(recipients))

	return &BroadcastResult{
		Recipients: len(recipients),
		SlotCount:  len(slotIDs),
	}, nil
}

func (c *broadcastCommandsImpl) recordHistory(ctx context.Context, action, message string, slotIDs []uuid.UUID, recipients int) {
	_, err := shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.broadcastRepo.RecordHistory(ctx, tx, action, message, slotIDs, recipients)
	})
	if err != nil {
		c.logger.Warn("failed to record broadcast history",
			"action", action, "error", err)
	}
}
