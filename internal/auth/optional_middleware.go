package auth

import (
	"gameshelf/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets the userID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, err := jwt.ParseToken(secret, token); err == nil {
				c.Set(ContextUserID, userID)
			}
		}
		c.Next()
	}
}
