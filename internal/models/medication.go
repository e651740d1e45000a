package models

import "time"

// Medication is one medication a user takes. Rows are always owned by
// exactly one user; UserID is set at creation and never changes.
type Medication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Dose      string    `gorm:"size:64;not null" json:"dose"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
