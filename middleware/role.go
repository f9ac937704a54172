package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickcowork/models"
)

// RequireRole gates a route group to a single role. Must run after
// JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := Principal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if u.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This action requires the " + string(role) + " role",
			})
			return
		}
		c.Next()
	}
}
