package api

import (
	"errors"
	"net/http"

	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RefundHandler struct {
	refundQueries  queries.RefundQueries
	refundCommands commands.RefundCommands
}

func NewRefundHandler(refundQueries queries.RefundQueries, refundCommands commands.RefundCommands) *RefundHandler {
	return &RefundHandler{
		refundQueries:  refundQueries,
		refundCommands: refundCommands,
	}
}

// @Summary Refund queue
// @Description Requested refunds with their running total, plus recently settled ones
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.RefundQueueView
// @Failure 401 {object} map[string]string
// @Router /refunds [get]
func (h *RefundHandler) Queue(c *gin.Context) {
	view, err := h.refundQueries.Queue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Process one refund
// @Description Push a queued refund through the payment provider
// @Tags refunds
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 202 "Accepted"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /refunds/{id}/process [post]
func (h *RefundHandler) Process(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.refundCommands.Process(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotRefundable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking has no online checkout to refund",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Refund processing failed",
			})
		}
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Mark refund settled manually
// @Tags refunds
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /refunds/{id}/mark-processed [post]
func (h *RefundHandler) MarkProcessed(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.refundCommands.MarkProcessed(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Process the whole queue
// @Description Work through every requested refund one at a time
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RefundAllResponse
// @Failure 401 {object} map[string]string
// @Router /refunds/process-all [post]
func (h *RefundHandler) ProcessAll(c *gin.Context) {
	summary, err := h.refundCommands.ProcessAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundAllSummary(summary))
}
