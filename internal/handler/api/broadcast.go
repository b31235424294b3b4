package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "kayak-console/internal/handler/dto/request"
	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BroadcastHandler struct {
	broadcastQueries  queries.BroadcastQueries
	broadcastCommands commands.BroadcastCommands
}

func NewBroadcastHandler(broadcastQueries queries.BroadcastQueries, broadcastCommands commands.BroadcastCommands) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastQueries:  broadcastQueries,
		broadcastCommands: broadcastCommands,
	}
}

// @Summary Broadcast calendar
// @Description Open future slots grouped by day, for target selection
// @Tags broadcasts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.SlotDayGroup
// @Router /broadcasts/calendar [get]
func (h *BroadcastHandler) Calendar(c *gin.Context) {
	days, err := h.broadcastQueries.Calendar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, days)
}

// @Summary Broadcast targets
// @Description Customers who would receive a message to the given slots
// @Tags broadcasts
// @Produce json
// @Security BearerAuth
// @Param slot_ids query string true "Comma-separated slot IDs"
// @Success 200 {array} queries.BroadcastTarget
// @Failure 400 {object} map[string]string
// @Router /broadcasts/targets [get]
func (h *BroadcastHandler) Targets(c *gin.Context) {
	slotIDs, err := parseSlotIDs(c.Query("slot_ids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	targets, err := h.broadcastQueries.Targets(c.Request.Context(), slotIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, targets)
}

// @Summary Broadcast history
// @Tags broadcasts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BroadcastHistoryItem
// @Router /broadcasts/history [get]
func (h *BroadcastHandler) History(c *gin.Context) {
	items, err := h.broadcastQueries.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Send broadcast
// @Description Message every paid or confirmed customer of the selected slots
// @Tags broadcasts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendBroadcastRequest true "Message and targets"
// @Success 200 {object} resdto.BroadcastResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /broadcasts/send [post]
func (h *BroadcastHandler) Send(c *gin.Context) {
	var req reqdto.SendBroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.broadcastCommands.Send(c.Request.Context(), req.Message, req.SlotIDs)
	if err != nil {
		h.writeBroadcastError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBroadcastResult(result))
}

// @Summary Weather cancellation
// @Description Cancel the selected slots for weather, notify customers and queue refunds
// @Tags broadcasts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WeatherCancelRequest true "Slots and reason"
// @Success 200 {object} resdto.BroadcastResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /broadcasts/weather-cancel [post]
func (h *BroadcastHandler) WeatherCancel(c *gin.Context) {
	var req reqdto.WeatherCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.broadcastCommands.WeatherCancel(c.Request.Context(), req.SlotIDs, req.Reason)
	if err != nil {
		h.writeBroadcastError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBroadcastResult(result))
}

func (h *BroadcastHandler) writeBroadcastError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEmptyMessage),
		errors.Is(err, commands.ErrNoSlotsChosen),
		errors.Is(err, commands.ErrMissingReason):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, commands.ErrBroadcastFatal):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Broadcast delivery failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseSlotIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, errors.New("slot_ids is required")
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New("invalid slot ID: " + p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
