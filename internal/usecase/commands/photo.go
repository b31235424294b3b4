package commands

import (
	"context"
	"log/slog"
	"strings"

	"kayak-console/internal/infra/db"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/queries"
	"kayak-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNoPhotoURLs    = errs.New("no photo URLs provided")
	ErrNoTripGuests   = errs.New("no guests on the selected trip")
	ErrPhotoSendFatal = errs.New("photo delivery failed")
)

type PhotoSendResult struct {
	Recipients int
	PhotoCount int
}

// PhotoSender is the messaging backend that delivers photo links to the
// guests of a departed trip.
type PhotoSender interface {
	SendPhotos(ctx context.Context, slotID uuid.UUID, photoURLs []string) error
}

type PhotoCommands interface {
	// Send delivers the photo links to every paid or confirmed guest of
	// the slot and records each link in the trip photo history.
	Send(ctx context.Context, slotID uuid.UUID, photoURLs []string) (*PhotoSendResult, error)
}

type photoCommandsImpl struct {
	photoRepo PhotoWriteRepository
	targets   queries.BroadcastTargetStore
	sender    PhotoSender
	db        *pgxpool.Pool
	logger    *slog.Logger
}

func NewPhotoCommands(
	photoRepo PhotoWriteRepository,
	targets queries.BroadcastTargetStore,
	sender PhotoSender,
	db *pgxpool.Pool,
	logger *slog.Logger,
) PhotoCommands {
	return &photoCommandsImpl{
		photoRepo: photoRepo,
		targets:   targets,
		sender:    sender,
		db:        db,
		logger:    logger,
	}
}

func (c *photoCommandsImpl) Send(ctx context.Context, slotID uuid.UUID, photoURLs []string) (*PhotoSendResult, error) {
	urls := make([]string, 0, len(photoURLs))
	for _, u := range photoURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return nil, ErrNoPhotoURLs
	}

	recipients, err := c.targets.FindTargets(ctx, []uuid.UUID{slotID})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(recipients) == 0 {
		return nil, ErrNoTripGuests
	}

	if err := c.sender.SendPhotos(ctx, slotID, urls); err != nil {
		return nil, errs.Mark(err, ErrPhotoSendFatal)
	}

	_, err = shared.RunInTx(ctx, c.db, func(tx db.DBTX) (struct{}, error) {
		for _, url := range urls {
			if err := c.photoRepo.RecordPhoto(ctx, tx, slotID, url); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		c.logger.Warn("failed to record trip photos",
			"slot_id", slotID, "error", err)
	}

	return &PhotoSendResult{
		Recipients: len(recipients),
		PhotoCount: len(urls),
	}, nil
}
