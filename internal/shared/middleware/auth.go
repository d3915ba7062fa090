package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/shared/response"
	"book-catalog/pkg/jwt"
)

// Auth verifies the Bearer token on mutating routes and stores the
// operator identity in the request context under "operator".
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("operator", claims.Operator)

		c.Next()
	}
}
