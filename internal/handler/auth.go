package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/CharanV17/Medication-remainder/internal/models"
	"github.com/CharanV17/Medication-remainder/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// NewAuthHandler builds an AuthHandler. ttlHours <= 0 falls back to the
// 7-day default token lifetime.
func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours, bcryptCost int) *AuthHandler {
	ttl := util.DefaultTokenTTL
	if ttlHours > 0 {
		ttl = time.Duration(ttlHours) * time.Hour
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		TokenTTL:   ttl,
		BcryptCost: bcryptCost,
	}
}

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates an account and issues a token bound to the new id.
// Duplicate email is a 409, distinguishable from the 400 validation case.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Email and password required")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Email and password required")
		return
	}

	// email uniqueness is case-sensitive, matching the unique index
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	util.OK(c, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"id":      user.ID,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the identical 401 so the two cases cannot be
// told apart from outside.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", strings.TrimSpace(req.Email)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusUnauthorized, "Invalid email or password")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	util.OK(c, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
