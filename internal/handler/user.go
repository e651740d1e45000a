package handler

import (
	"errors"
	"net/http"

	"github.com/CharanV17/Medication-remainder/internal/models"
	"github.com/CharanV17/Medication-remainder/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMe returns the authenticated user's profile.
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Error(c, http.StatusNotFound, "User not found")
			} else {
				util.Error(c, http.StatusInternalServerError, "Failed to fetch user")
			}
			return
		}

		util.OK(c, gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"created_at": user.CreatedAt,
		})
	}
}
