package request

import "github.com/google/uuid"

type SendBroadcastRequest struct {
	Message string      `json:"message" binding:"required"`
	SlotIDs []uuid.UUID `json:"slot_ids" binding:"required,min=1"`
}

type WeatherCancelRequest struct {
	SlotIDs []uuid.UUID `json:"slot_ids" binding:"required,min=1"`
	Reason  string      `json:"reason" binding:"required"`
}
