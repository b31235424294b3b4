package response

import (
	"kayak-console/internal/usecase/commands"

	"github.com/google/uuid"
)

type RefundItemResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Reference string    `json:"reference"`
	Error     string    `json:"error,omitempty"`
}

type RefundAllResponse struct {
	Processed int                  `json:"processed"`
	Failed    int                  `json:"failed"`
	Results   []RefundItemResponse `json:"results"`
}

func FromRefundAllSummary(summary *commands.RefundAllSummary) RefundAllResponse {
	resp := RefundAllResponse{
		Processed: summary.Processed,
		Failed:    summary.Failed,
		Results:   make([]RefundItemResponse, len(summary.Results)),
	}
	for i, r := range summary.Results {
		item := RefundItemResponse{
			BookingID: r.BookingID,
			Reference: r.Reference,
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		resp.Results[i] = item
	}
	return resp
}
