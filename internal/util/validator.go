package util

import (
	"fmt"
	"time"
)

// ValidateTimeOfDay checks a wall-clock time in "HH:MM" form.
func ValidateTimeOfDay(s string) error {
	if s == "" {
		return fmt.Errorf("time_of_day is empty")
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time_of_day format: %w", err)
	}
	return nil
}

// ValidateTimezone checks that the string names a loadable IANA zone.
func ValidateTimezone(s string) error {
	if s == "" {
		return fmt.Errorf("timezone is empty")
	}
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	return nil
}

// ValidateRepeatPattern checks the repeat pattern enum.
func ValidateRepeatPattern(s string) error {
	switch s {
	case "daily", "weekly", "monthly", "custom":
		return nil
	}
	return fmt.Errorf("invalid repeat_pattern: %q", s)
}
