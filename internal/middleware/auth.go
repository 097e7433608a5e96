package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cleaning-booking-api/internal/auth"
)

// Context keys set for handlers behind RequireAuth.
const (
	CtxAdminID  = "adminID"
	CtxUsername = "adminUsername"
)

// RequireAuth gates admin-only routes behind a bearer access token.
// Every failure mode returns the same generic 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ""
		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				raw = parts[1]
			}
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}

		c.Set(CtxAdminID, claims.AdminID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}
