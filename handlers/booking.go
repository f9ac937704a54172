package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	recordsRepo "quickcowork/database/repository/records"
	spaceRepo "quickcowork/database/repository/space"
	"quickcowork/middleware"
	"quickcowork/models"
	"quickcowork/services/booking"
	"quickcowork/utils"
)

// BookingHandler serves quotes, draft validation and submission.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// QuoteHandler returns the price breakdown for a space and duration.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var req struct {
		SpaceID       string `json:"spaceId" binding:"required"`
		DurationHours int    `json:"duration" binding:"required,min=1,max=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quote request", err.Error())
		return
	}

	quote, err := h.Bookings.Quote(req.SpaceID, req.DurationHours)
	if err == spaceRepo.ErrSpaceNotFound {
		utils.JSONError(c, http.StatusNotFound, "Space not found", "no space with id "+req.SpaceID)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute quote", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ValidateDraftHandler checks a draft and reports every failing field.
func (h *BookingHandler) ValidateDraftHandler(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking draft", err.Error())
		return
	}

	err := h.Bookings.ValidateDraft(draft)
	if err == spaceRepo.ErrSpaceNotFound {
		utils.JSONError(c, http.StatusNotFound, "Space not found", "no space with id "+draft.SpaceID)
		return
	}
	var ve *booking.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "fields": ve.Fields})
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Validation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// SubmitBookingHandler runs the asynchronous submission and waits for its
// result on behalf of the client.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking draft", err.Error())
		return
	}

	result := <-h.Bookings.Submit(c.Request.Context(), u.ID, draft)
	if result.Err != nil {
		if result.Err == spaceRepo.ErrSpaceNotFound {
			utils.JSONError(c, http.StatusNotFound, "Space not found", "no space with id "+draft.SpaceID)
			return
		}
		var ve *booking.ValidationError
		if errors.As(result.Err, &ve) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "fields": ve.Fields})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", result.Err.Error())
		return
	}

	c.JSON(http.StatusCreated, result.Summary)
}

// LastBookingHandler returns the confirmation summary of the user's most
// recent booking.
func (h *BookingHandler) LastBookingHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	summary, err := h.Bookings.LastBooking(c.Request.Context(), u.ID)
	if err == recordsRepo.ErrRecordNotFound {
		utils.JSONError(c, http.StatusNotFound, "No booking yet", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
