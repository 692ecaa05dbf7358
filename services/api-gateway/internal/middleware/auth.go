package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"courseplatform/services/api-gateway/internal/client"
)

func AuthMiddleware(authClient *client.AuthClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		userID, role, err := authClient.Validate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userId", userID)
		c.Set("role", role)

		c.Next()
	}
}

// RequireOperator пускает дальше только операторов. Вешается после AuthMiddleware.
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "operator" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: operators only"})
			return
		}
		c.Next()
	}
}
