package router

import (
	"net/http"

	"github.com/CharanV17/Medication-remainder/internal/config"
	"github.com/CharanV17/Medication-remainder/internal/handler"
	"github.com/CharanV17/Medication-remainder/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and mounts all routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// auth routes, no token required
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// everything below requires a valid bearer token
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	protected.GET("/me", handler.GetMe(db))

	medHandler := handler.NewMedicationHandler(db)
	meds := protected.Group("/medications")
	meds.POST("", medHandler.Create)
	meds.GET("", medHandler.List)
	meds.GET("/:id", medHandler.Get)
	meds.PUT("/:id", medHandler.Update)
	meds.DELETE("/:id", medHandler.Delete)

	remHandler := handler.NewReminderHandler(db)
	rems := protected.Group("/reminders")
	rems.POST("", remHandler.Create)
	rems.GET("", remHandler.List)
	rems.GET("/:id", remHandler.Get)
	rems.PUT("/:id", remHandler.Update)
	rems.DELETE("/:id", remHandler.Delete)

	return r
}
