package api

import (
	"errors"
	"net/http"

	reqdto "kayak-console/internal/handler/dto/request"
	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photoQueries  queries.PhotoQueries
	photoCommands commands.PhotoCommands
}

func NewPhotoHandler(photoQueries queries.PhotoQueries, photoCommands commands.PhotoCommands) *PhotoHandler {
	return &PhotoHandler{
		photoQueries:  photoQueries,
		photoCommands: photoCommands,
	}
}

// @Summary Recent trips
// @Description Departed slots of the past week with guests, grouped by day
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.SlotDayGroup
// @Router /photos/trips [get]
func (h *PhotoHandler) RecentTrips(c *gin.Context) {
	days, err := h.photoQueries.RecentTrips(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, days)
}

// @Summary Photo send history
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PhotoHistoryItem
// @Router /photos/history [get]
func (h *PhotoHandler) History(c *gin.Context) {
	items, err := h.photoQueries.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Send trip photos
// @Description Deliver photo links to every guest of a departed slot
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendPhotosRequest true "Slot and photo URLs"
// @Success 200 {object} resdto.PhotoSendResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /photos/send [post]
func (h *PhotoHandler) Send(c *gin.Context) {
	var req reqdto.SendPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.photoCommands.Send(c.Request.Context(), req.SlotID, req.PhotoURLs)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoPhotoURLs),
			errors.Is(err, commands.ErrNoTripGuests):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, commands.ErrPhotoSendFatal):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Photo delivery failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPhotoSendResult(result))
}
