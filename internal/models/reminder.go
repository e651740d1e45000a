package models

import "time"

// Repeat patterns accepted for a reminder schedule.
const (
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
	RepeatCustom  = "custom"
)

// Reminder is an inert schedule description attached to a medication.
// Nothing fires it; it only records when the user wants to be reminded.
// MedicationID must reference a medication with the same UserID — the
// handler checks this, the schema alone cannot.
type Reminder struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	MedicationID  uint      `gorm:"index;not null" json:"medication_id"`
	TimeOfDay     string    `gorm:"size:5;not null" json:"time_of_day"` // "HH:MM"
	Timezone      string    `gorm:"size:64;not null" json:"timezone"`   // IANA zone name
	RepeatPattern string    `gorm:"size:16;not null;default:daily" json:"repeat_pattern"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
