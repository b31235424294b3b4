package api

import (
	"errors"
	"net/http"

	dominvoice "kayak-console/internal/domain/invoice"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceQueries  queries.InvoiceQueries
	invoiceCommands commands.InvoiceCommands
}

func NewInvoiceHandler(invoiceQueries queries.InvoiceQueries, invoiceCommands commands.InvoiceCommands) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceQueries:  invoiceQueries,
		invoiceCommands: invoiceCommands,
	}
}

// @Summary List invoices
// @Description Recent invoices grouped by activity day with an outstanding total
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param sort query string false "booking_desc, booking_asc, created_desc or created_asc"
// @Param day query string false "Restrict to one business-timezone day (YYYY-MM-DD)"
// @Success 200 {object} queries.InvoiceListView
// @Failure 400 {object} map[string]string
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	filters := queries.InvoiceFilters{
		ExactDay: c.Query("day"),
	}
	if s := c.Query("sort"); s != "" {
		mode := dominvoice.SortMode(s)
		if !mode.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown sort mode",
			})
			return
		}
		filters.Sort = mode
	}

	view, err := h.invoiceQueries.List(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Render pro forma invoice
// @Description Self-contained printable HTML document
// @Tags invoices
// @Produce html
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} map[string]string
// @Router /invoices/{id}/render [get]
func (h *InvoiceHandler) Render(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	html, filename, err := h.invoiceQueries.Render(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// @Summary Resend invoice email
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 202 "Accepted"
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /invoices/{id}/resend [post]
func (h *InvoiceHandler) Resend(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.invoiceCommands.Resend(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Invoice delivery failed",
			})
		}
		return
	}
	c.Status(http.StatusAccepted)
}
