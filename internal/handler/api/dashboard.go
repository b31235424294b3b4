package api

import (
	"net/http"

	"kayak-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Today's dashboard
// @Description Today's manifest with booking stats and attention counters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Failure 401 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) Today(c *gin.Context) {
	view, err := h.dashboardQueries.Today(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}
