package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	recordsRepo "quickcowork/database/repository/records"
	"quickcowork/middleware"
	"quickcowork/services/dashboard"
	"quickcowork/services/listing"
	"quickcowork/services/user"
	"quickcowork/utils"
)

// AdminHandler serves the admin panel: platform stats, user management
// and listing review.
type AdminHandler struct {
	Users      user.UserService
	Listings   listing.ListingService
	Dashboards dashboard.DashboardService
}

func NewAdminHandler(users user.UserService, listings listing.ListingService, dashboards dashboard.DashboardService) *AdminHandler {
	return &AdminHandler{Users: users, Listings: listings, Dashboards: dashboards}
}

// GetAdminStatsHandler returns the platform counts shown at the top of the
// admin panel. The route is admin-gated, so the dashboard dispatch always
// yields the admin view.
func (h *AdminHandler) GetAdminStatsHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	view, err := h.Dashboards.ForUser(c.Request.Context(), u)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to assemble stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, view.Admin)
}

func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Users.Delete(id); err != nil {
		var ae *user.AuthError
		if errors.As(err, &ae) {
			c.JSON(authStatus(ae), gin.H{"error": ae.Message, "code": ae.Code})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *AdminHandler) GetPendingListingsHandler(c *gin.Context) {
	pending, err := h.Listings.Pending(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list pending listings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": pending, "count": len(pending)})
}

func (h *AdminHandler) ApproveListingHandler(c *gin.Context) {
	h.moderate(c, h.Listings.Approve, "approved")
}

func (h *AdminHandler) RejectListingHandler(c *gin.Context) {
	h.moderate(c, h.Listings.Reject, "rejected")
}

func (h *AdminHandler) moderate(c *gin.Context, action func(ctx context.Context, id string) error, verb string) {
	id := c.Param("id")
	err := action(c.Request.Context(), id)
	if err == recordsRepo.ErrRecordNotFound {
		utils.JSONError(c, http.StatusNotFound, "Listing not found", "no listing with id "+id)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update listing", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": verb})
}
