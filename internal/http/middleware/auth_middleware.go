package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// SessionMiddleware gates every protected route. It reads the session token
// from the request cookie, verifies signature and expiry, and attaches the
// decoded identity to the request context. No store is consulted, so a user
// deleted after issuance stays authenticated until the token expires.
func SessionMiddleware(tokenSvc domain.TokenService, cookieName string) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		// Malformed, expired, and bad-signature tokens are all the same
		// failure to the caller.
		claims, err := tokenSvc.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)

		c.Next()
	})
}
