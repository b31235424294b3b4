package api

import (
	"errors"
	"net/http"
	"time"

	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/pkg/clock"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slotQueries  queries.SlotQueries
	slotCommands commands.SlotCommands
	clock        clock.Clock
	loc          *time.Location
}

func NewSlotHandler(
	slotQueries queries.SlotQueries,
	slotCommands commands.SlotCommands,
	clk clock.Clock,
	loc *time.Location,
) *SlotHandler {
	return &SlotHandler{
		slotQueries:  slotQueries,
		slotCommands: slotCommands,
		clock:        clk,
		loc:          loc,
	}
}

// @Summary Week of slots
// @Description Slots for the Monday-started week containing the anchor day
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param anchor query string false "Any day inside the wanted week (YYYY-MM-DD)"
// @Success 200 {array} queries.SlotDayGroup
// @Failure 400 {object} map[string]string
// @Router /slots/week [get]
func (h *SlotHandler) Week(c *gin.Context) {
	anchor := h.clock.Now().In(h.loc)
	if s := c.Query("anchor"); s != "" {
		parsed, err := time.ParseInLocation(dayFormat, s, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, want YYYY-MM-DD",
			})
			return
		}
		anchor = parsed
	}

	days, err := h.slotQueries.Week(c.Request.Context(), anchor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, days)
}

// @Summary Day of slots
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day to list (YYYY-MM-DD), today when omitted"
// @Success 200 {array} queries.SlotView
// @Failure 400 {object} map[string]string
// @Router /slots/day [get]
func (h *SlotHandler) Day(c *gin.Context) {
	day := h.clock.Now().In(h.loc)
	if s := c.Query("date"); s != "" {
		parsed, err := time.ParseInLocation(dayFormat, s, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, want YYYY-MM-DD",
			})
			return
		}
		day = parsed
	}

	slots, err := h.slotQueries.Day(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary Toggle slot open/closed
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotToggledResponse
// @Failure 404 {object} map[string]string
// @Router /slots/{id}/toggle [post]
func (h *SlotHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	status, err := h.slotCommands.Toggle(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.SlotToggledResponse{
		ID:     id,
		Status: status.String(),
	})
}
