// middleware/jwt.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/YourGothDaddy/fitness-tracker-sub000/entity"
	"github.com/YourGothDaddy/fitness-tracker-sub000/util"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key the authenticated user ID is stored
// under.
const ContextUserID = "userID"

// AuthenticateJWT is a middleware function that verifies JWT tokens
func AuthenticateJWT(config *entity.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		// The token is prefixed with 'Bearer ', so we need to trim that
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := util.ValidateJWT(tokenString, config.JWTSecretKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID extracts the authenticated user's ID from the gin context.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
