package handler

import (
	"net/http"

	"github.com/CharanV17/Medication-remainder/internal/middleware"
	"github.com/CharanV17/Medication-remainder/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id placed in the context by
// middleware.AuthMiddleware. A missing id means the route was mounted
// without the middleware; respond 401 and report false.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		return 0, false
	}
	return id, true
}
