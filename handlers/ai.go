package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickcowork/middleware"
	"quickcowork/models"
	ai "quickcowork/services/intelligence"
	"quickcowork/utils"
)

// AIHandler serves the concierge chat widget.
type AIHandler struct {
	Concierge ai.ConciergeService
}

func NewAIHandler(svc ai.ConciergeService) *AIHandler {
	return &AIHandler{Concierge: svc}
}

// ChatHandler answers one conversation turn. External failures degrade to
// the canned responder, so this never returns an AI error to the client.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat message", "text is required")
		return
	}

	resp, err := h.Concierge.Chat(c.Request.Context(), u.ID, req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Chat failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChatHistoryHandler returns the user's recent transcript in
// chronological order.
func (h *AIHandler) ChatHistoryHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	count, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	msgs, err := h.Concierge.History(c.Request.Context(), u.ID, count)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load chat history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs, "count": len(msgs)})
}
