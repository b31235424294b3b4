package request

import "github.com/google/uuid"

type SendPhotosRequest struct {
	SlotID    uuid.UUID `json:"slot_id" binding:"required"`
	PhotoURLs []string  `json:"photo_urls" binding:"required,min=1"`
}
