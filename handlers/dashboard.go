package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickcowork/middleware"
	"quickcowork/services/dashboard"
	"quickcowork/utils"
)

// DashboardHandler serves the role-dispatched dashboard view.
type DashboardHandler struct {
	Dashboards dashboard.DashboardService
}

func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboards: svc}
}

func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	view, err := h.Dashboards.ForUser(c.Request.Context(), u)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to assemble dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}
