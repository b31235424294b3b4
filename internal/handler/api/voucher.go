package api

import (
	"net/http"

	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	voucherQueries queries.VoucherQueries
}

func NewVoucherHandler(voucherQueries queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{
		voucherQueries: voucherQueries,
	}
}

// @Summary List vouchers
// @Description Vouchers grouped by purchase day, filterable by day and free text
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param day query string false "Restrict to one business-timezone day (YYYY-MM-DD)"
// @Param search query string false "Case-insensitive match on code, names, emails, tour"
// @Success 200 {array} queries.VoucherDayGroup
// @Failure 401 {object} map[string]string
// @Router /vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	filters := queries.VoucherFilters{
		ExactDay: c.Query("day"),
		Search:   c.Query("search"),
	}

	days, err := h.voucherQueries.List(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, days)
}
