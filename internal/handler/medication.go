package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/CharanV17/Medication-remainder/internal/models"
	"github.com/CharanV17/Medication-remainder/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const medNotFoundMsg = "Medication not found or unauthorized"

// MedicationHandler serves owner-scoped CRUD over medications. Every
// per-id query joins on the caller's user id, so rows of other users are
// indistinguishable from rows that do not exist.
type MedicationHandler struct {
	DB *gorm.DB
}

func NewMedicationHandler(db *gorm.DB) *MedicationHandler {
	return &MedicationHandler{DB: db}
}

type createMedicationReq struct {
	Name  string `json:"name"`
	Dose  string `json:"dose"`
	Notes string `json:"notes"`
}

type updateMedicationReq struct {
	Name  *string `json:"name"`
	Dose  *string `json:"dose"`
	Notes *string `json:"notes"`
}

// parseID reads the :id route parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *MedicationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createMedicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Name and dose are required")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Dose = strings.TrimSpace(req.Dose)
	if req.Name == "" || req.Dose == "" {
		util.Error(c, http.StatusBadRequest, "Name and dose are required")
		return
	}

	// owner is always the caller; any client-supplied user_id is ignored
	med := models.Medication{
		UserID: userID,
		Name:   req.Name,
		Dose:   req.Dose,
		Notes:  req.Notes,
	}
	if err := h.DB.Create(&med).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to add medication")
		return
	}

	util.OK(c, gin.H{
		"message": "Medication added successfully",
		"id":      med.ID,
	})
}

func (h *MedicationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	meds := make([]models.Medication, 0)
	if err := h.DB.Scopes(models.OwnedBy(userID)).
		Order("id ASC").
		Find(&meds).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch medications")
		return
	}

	util.OK(c, meds)
}

func (h *MedicationHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		util.Error(c, http.StatusNotFound, medNotFoundMsg)
		return
	}

	var med models.Medication
	if err := h.DB.Scopes(models.OwnedBy(userID)).
		First(&med, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, medNotFoundMsg)
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch medication")
		}
		return
	}

	util.OK(c, med)
}

func (h *MedicationHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		util.Error(c, http.StatusNotFound, medNotFoundMsg)
		return
	}

	var req updateMedicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// only supplied fields are written; user_id is never updatable
	updates := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			util.Error(c, http.StatusBadRequest, "Name and dose are required")
			return
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Dose != nil {
		if strings.TrimSpace(*req.Dose) == "" {
			util.Error(c, http.StatusBadRequest, "Name and dose are required")
			return
		}
		updates["dose"] = strings.TrimSpace(*req.Dose)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	var med models.Medication
	if err := h.DB.Scopes(models.OwnedBy(userID)).
		First(&med, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, medNotFoundMsg)
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to update medication")
		}
		return
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&med).Updates(updates).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Failed to update medication")
			return
		}
	}

	util.OK(c, gin.H{"message": "Medication updated successfully"})
}

// Delete removes a medication. Reminders pointing at it are left in
// place; they are inert schedule rows and nothing ever fires them.
func (h *MedicationHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		util.Error(c, http.StatusNotFound, medNotFoundMsg)
		return
	}

	res := h.DB.Scopes(models.OwnedBy(userID)).
		Where("id = ?", id).
		Delete(&models.Medication{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete medication")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, medNotFoundMsg)
		return
	}

	util.OK(c, gin.H{"message": "Medication deleted successfully"})
}
