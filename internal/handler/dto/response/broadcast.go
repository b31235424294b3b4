package response

import (
	"kayak-console/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type BroadcastResponse struct {
	Recipients int `json:"recipients"`
	SlotCount  int `json:"slot_count"`
}

func FromBroadcastResult(result *commands.BroadcastResult) BroadcastResponse {
	var resp BroadcastResponse
	_ = copier.Copy(&resp, result)
	return resp
}

type PeakResponse struct {
	SlotsTouched int64 `json:"slots_touched"`
}
