package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CharanV17/Medication-remainder/internal/models"
	"github.com/CharanV17/Medication-remainder/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const reminderNotFoundMsg = "Reminder not found or unauthorized"

// errNotOwned marks a medication reference that either does not exist or
// belongs to another user. Both map to the same 404.
var errNotOwned = errors.New("medication not found or unauthorized")

// ReminderHandler serves owner-scoped CRUD over reminders. Beyond the
// ownership scoping shared with medications, a reminder must reference a
// medication owned by the same caller; that check runs in the same
// transaction as the write so the medication cannot vanish in between.
type ReminderHandler struct {
	DB *gorm.DB
}

func NewReminderHandler(db *gorm.DB) *ReminderHandler {
	return &ReminderHandler{DB: db}
}

type createReminderReq struct {
	MedicationID  uint   `json:"medication_id"`
	TimeOfDay     string `json:"time_of_day"`
	Timezone      string `json:"timezone"`
	RepeatPattern string `json:"repeat_pattern"`
}

type updateReminderReq struct {
	MedicationID  *uint   `json:"medication_id"`
	TimeOfDay     *string `json:"time_of_day"`
	Timezone      *string `json:"timezone"`
	RepeatPattern *string `json:"repeat_pattern"`
}

// requireOwnedMedication fails with errNotOwned unless the medication
// exists and belongs to userID.
func requireOwnedMedication(tx *gorm.DB, medicationID, userID uint) error {
	var med models.Medication
	err := tx.Scopes(models.OwnedBy(userID)).First(&med, medicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errNotOwned
	}
	return err
}

func (h *ReminderHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}

	if req.MedicationID == 0 || req.TimeOfDay == "" || req.Timezone == "" {
		util.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}
	if err := util.ValidateTimeOfDay(req.TimeOfDay); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid time_of_day, expected HH:MM")
		return
	}
	if err := util.ValidateTimezone(req.Timezone); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid timezone")
		return
	}
	pattern := strings.TrimSpace(req.RepeatPattern)
	if pattern == "" {
		pattern = models.RepeatDaily
	}
	if err := util.ValidateRepeatPattern(pattern); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid repeat_pattern")
		return
	}

	reminder := models.Reminder{
		UserID:        userID,
		MedicationID:  req.MedicationID,
		TimeOfDay:     req.TimeOfDay,
		Timezone:      req.Timezone,
		RepeatPattern: pattern,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwnedMedication(tx, req.MedicationID, userID); err != nil {
			return err
		}
		return tx.Create(&reminder).Error
	})
	if err != nil {
		if errors.Is(err, errNotOwned) {
			util.Error(c, http.StatusNotFound, medNotFoundMsg)
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to create reminder")
		}
		return
	}

	util.OK(c, gin.H{
		"message": "Reminder created successfully",
		"id":      reminder.ID,
	})
}

func (h *ReminderHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminders := make([]models.Reminder, 0)
	if err := h.DB.Scopes(models.OwnedBy(userID)).
		Order("id ASC").
		Find(&reminders).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch reminders")
		return
	}

	util.OK(c, reminders)
}

func (h *ReminderHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		util.Error(c, http.StatusNotFound, reminderNotFoundMsg)
		return
	}

	var reminder models.Reminder
	if err := h.DB.Scopes(models.OwnedBy(userID)).
		First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, reminderNotFoundMsg)
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch reminder")
		}
		return
	}

	util.OK(c, reminder)
}

func (h *ReminderHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		util.Error(c, http.StatusNotFound, reminderNotFoundMsg)
		return
	}

	var req updateReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.TimeOfDay != nil {
		if err := util.ValidateTimeOfDay(*req.TimeOfDay); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid time_of_day, expected HH:MM")
			return
		}
		updates["time_of_day"] = *req.TimeOfDay
	}
	if req.Timezone != nil {
		if err := util.ValidateTimezone(*req.Timezone); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid timezone")
			return
		}
		updates["timezone"] = *req.Timezone
	}
	if req.RepeatPattern != nil {
		if err := util.ValidateRepeatPattern(*req.RepeatPattern); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid repeat_pattern")
			return
		}
		updates["repeat_pattern"] = *req.RepeatPattern
	}
	if req.MedicationID != nil {
		if *req.MedicationID == 0 {
			util.Error(c, http.StatusBadRequest, "Missing fields")
			return
		}
		updates["medication_id"] = *req.MedicationID
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var reminder models.Reminder
		if err := tx.Scopes(models.OwnedBy(userID)).
			First(&reminder, id).Error; err != nil {
			return err
		}
		// repointing at another medication re-runs the ownership check
		if req.MedicationID != nil && *req.MedicationID != reminder.MedicationID {
			if err := requireOwnedMedication(tx, *req.MedicationID, userID); err != nil {
				return err
			}
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&reminder).Updates(updates).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.Error(c, http.StatusNotFound, reminderNotFoundMsg)
		case errors.Is(err, errNotOwned):
			util.Error(c, http.StatusNotFound, medNotFoundMsg)
		default:
			util.Error(c, http.StatusInternalServerError, "Failed to update reminder")
		}
		return
	}

	util.OK(c, gin.H{"message": "Reminder updated successfully"})
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		util.Error(c, http.StatusNotFound, reminderNotFoundMsg)
		return
	}

	res := h.DB.Scopes(models.OwnedBy(userID)).
		Where("id = ?", id).
		Delete(&models.Reminder{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, reminderNotFoundMsg)
		return
	}

	util.OK(c, gin.H{"message": "Reminder deleted successfully"})
}
