package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "kayak-console/internal/handler/dto/request"
	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries  queries.PricingQueries
	pricingCommands commands.PricingCommands
	loc             *time.Location
}

func NewPricingHandler(
	pricingQueries queries.PricingQueries,
	pricingCommands commands.PricingCommands,
	loc *time.Location,
) *PricingHandler {
	return &PricingHandler{
		pricingQueries:  pricingQueries,
		pricingCommands: pricingCommands,
		loc:             loc,
	}
}

// @Summary Pricing overview
// @Description Active tours with their rates and the current peak ranges
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.PricingView
// @Failure 401 {object} map[string]string
// @Router /pricing [get]
func (h *PricingHandler) Overview(c *gin.Context) {
	view, err := h.pricingQueries.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Apply peak pricing
// @Description Set the tour's peak rate over an inclusive day range
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyPeakRequest true "Tour, range and rate"
// @Success 200 {object} resdto.PeakResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/peak [post]
func (h *PricingHandler) ApplyPeak(c *gin.Context) {
	var req reqdto.ApplyPeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	from, to, err := req.Range(h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, want YYYY-MM-DD",
		})
		return
	}

	result, err := h.pricingCommands.ApplyPeak(c.Request.Context(), req.TourID, from, to, req.Price)
	if err != nil {
		h.writePeakError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PeakResponse{SlotsTouched: result.SlotsTouched})
}

// @Summary Remove peak pricing
// @Description Clear the peak flag and override over an inclusive day range
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RemovePeakRequest true "Tour and range"
// @Success 200 {object} resdto.PeakResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/peak [delete]
func (h *PricingHandler) RemovePeak(c *gin.Context) {
	var req reqdto.RemovePeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	from, to, err := req.Range(h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, want YYYY-MM-DD",
		})
		return
	}

	result, err := h.pricingCommands.RemovePeak(c.Request.Context(), req.TourID, from, to)
	if err != nil {
		h.writePeakError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PeakResponse{SlotsTouched: result.SlotsTouched})
}

func (h *PricingHandler) writePeakError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidPeakRange), errors.Is(err, commands.ErrInvalidPeakPrice):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
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
}
