package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickcowork/middleware"
	"quickcowork/models"
	"quickcowork/services/user"
	"quickcowork/utils"
)

// UserHandler serves registration, login and the current-user profile.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Users: svc}
}

// authStatus maps the auth error taxonomy onto HTTP statuses.
func authStatus(ae *user.AuthError) int {
	switch ae.Code {
	case "not-found":
		return http.StatusNotFound
	case "rate-limited":
		return http.StatusTooManyRequests
	case "wrong-credential":
		return http.StatusUnauthorized
	case "email-taken":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req struct {
		Email    string      `json:"email" binding:"required"`
		Password string      `json:"password" binding:"required,min=6"`
		Role     models.Role `json:"role"`
		Name     string      `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.Users.SignUp(req.Email, req.Password, req.Role, req.Name)
	if err != nil {
		var ae *user.AuthError
		if errors.As(err, &ae) {
			c.JSON(authStatus(ae), gin.H{"error": ae.Message, "code": ae.Code})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	resp, err := h.Users.SignIn(req.Email, req.Password)
	if err != nil {
		var ae *user.AuthError
		if errors.As(err, &ae) {
			c.JSON(authStatus(ae), gin.H{"error": ae.Message, "code": ae.Code})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CurrentUserHandler returns the authenticated account's profile.
func (h *UserHandler) CurrentUserHandler(c *gin.Context) {
	u, ok := middleware.Principal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}
	c.JSON(http.StatusOK, u)
}
