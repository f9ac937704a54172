package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickcowork/middleware"
	"quickcowork/models"
	"quickcowork/services/listing"
	"quickcowork/utils"
)

// ListingHandler serves owner listing creation.
type ListingHandler struct {
	Listings listing.ListingService
}

func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{Listings: svc}
}

// CreateListingHandler queues an owner's new space for admin review.
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var space models.Space
	if err := c.ShouldBindJSON(&space); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid listing payload", err.Error())
		return
	}

	created, err := h.Listings.Create(c.Request.Context(), u.ID, space)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create listing", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}
