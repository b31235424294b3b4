package response

import (
	"github.com/google/uuid"
)

type SlotToggledResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}
