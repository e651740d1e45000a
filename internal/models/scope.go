package models

import "gorm.io/gorm"

// OwnedBy restricts a query to rows belonging to the given user. Every
// per-id lookup on medications and reminders goes through this scope, so
// "does not exist" and "belongs to someone else" are the same miss.
func OwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
