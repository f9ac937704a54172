package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userRepo "quickcowork/database/repository/user"
	"quickcowork/models"
	"quickcowork/utils"
)

// principalKey is the gin context key carrying the authenticated user.
const principalKey = "authUser"

// JWTAuthMiddleware validates the bearer token and attaches the account
// record to the request context. There is no ambient current-user state;
// handlers read the principal from the context explicitly.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		rec, err := repo.GetByID(claims.UserID)
		if err != nil || rec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			return
		}

		c.Set(principalKey, *rec)
		c.Next()
	}
}

// Principal returns the authenticated user attached by JWTAuthMiddleware.
func Principal(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
