package middleware

import (
	"net/http"
	"strings"

	"github.com/CharanV17/Medication-remainder/internal/util"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "currentUserID"

// AuthMiddleware verifies the bearer token and stores the subject user id
// in the context. Handlers behind it trust that id and never re-verify.
// Every failure path returns the same 401 body; the distinction between
// a missing header, a malformed token, a bad signature and an expired
// token is deliberately not surfaced to the client.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, parts[1])
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
