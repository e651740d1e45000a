package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the uniform error body used by every failing endpoint.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// OK writes a 200 with the given payload as-is.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
