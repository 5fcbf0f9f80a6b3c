package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator validates a session token and returns the user id it was
// issued for.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// RequireSelf enforces that the bearer token identity matches the :userId
// path parameter. Wishlist routes historically trusted the path id
// verbatim; this middleware is the opt-in hardening for that gap.
func RequireSelf(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			c.Abort()
			return
		}

		userID, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		if userID.String() != c.Param("userId") {
			c.JSON(http.StatusForbidden, gin.H{"message": "token does not match requested user"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
