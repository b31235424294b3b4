package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"kayak-console/internal/domain/booking"
	reqdto "kayak-console/internal/handler/dto/request"
	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/pkg/clock"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dayFormat = "2006-01-02"

type BookingHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
	clock           clock.Clock
	loc             *time.Location
}

func NewBookingHandler(
	bookingQueries queries.BookingQueries,
	bookingCommands commands.BookingCommands,
	clk clock.Clock,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
		clock:           clk,
		loc:             loc,
	}
}

// @Summary List bookings
// @Description List bookings in a date range grouped by day then slot
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start day (YYYY-MM-DD, business timezone)"
// @Param to query string false "End day inclusive (YYYY-MM-DD)"
// @Param statuses query string false "Comma-separated status filter"
// @Success 200 {array} queries.BookingDayGroup
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	from, to, err := h.dateWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, want YYYY-MM-DD",
		})
		return
	}

	statuses, err := parseStatuses(c.Query("statuses"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	days, err := h.bookingQueries.ListDayGroups(c.Request.Context(), from, to, statuses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, days)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
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
	c.JSON(http.StatusOK, view)
}

// @Summary Create booking
// @Description Create a manual booking and send the customer confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoParticipants):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking needs at least one participant",
			})
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrTourNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tour not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Edit booking
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.EditBookingRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.EditBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.Edit(c.Request.Context(), id, req.ToParams()); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark booking paid
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/mark-paid [post]
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.MarkPaid(c.Request.Context(), id); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
			})
		default:
			h.writeCommandError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Request refund
// @Description Refund through the payment provider, or queue for manual settlement when the booking has no online checkout
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RefundRequestedResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/{id}/refund [post]
func (h *BookingHandler) RequestRefund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	queued, err := h.bookingCommands.RequestRefund(c.Request.Context(), id)
	if err != nil {
		h.writeRefundError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RefundRequestedResponse{
		BookingID: id,
		Queued:    queued,
	})
}

// @Summary Rebook onto another slot
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RebookRequest true "Target slot"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/rebook [post]
func (h *BookingHandler) Rebook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.RebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.Rebook(c.Request.Context(), id, req.NewSlotID); err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			h.writeCommandError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// dateWindow resolves the from/to query params to a half-open range,
// defaulting to a week starting today.
func (h *BookingHandler) dateWindow(c *gin.Context) (time.Time, time.Time, error) {
	from := clock.StartOfDay(h.clock.Now().In(h.loc), h.loc)
	if s := c.Query("from"); s != "" {
		parsed, err := time.ParseInLocation(dayFormat, s, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	to := from.AddDate(0, 0, queries.DefaultListDays)
	if s := c.Query("to"); s != "" {
		parsed, err := time.ParseInLocation(dayFormat, s, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func (h *BookingHandler) writeCommandError(c *gin.Context, err error) {
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
}

func (h *BookingHandler) writeRefundError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Refund processing failed",
		})
	}
}

func parseStatuses(raw string) ([]booking.Status, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	statuses := make([]booking.Status, 0, len(parts))
	for _, p := range parts {
		status := booking.Status(strings.ToUpper(strings.TrimSpace(p)))
		if !status.IsValid() {
			return nil, errors.New("unknown booking status: " + string(status))
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
