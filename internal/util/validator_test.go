package util

import "testing"

func TestValidateTimeOfDay_Valid(t *testing.T) {
	testCases := []string{"00:00", "09:00", "12:30", "23:59"}

	for _, s := range testCases {
		if err := ValidateTimeOfDay(s); err != nil {
			t.Errorf("ValidateTimeOfDay(%q) error = %v, want nil", s, err)
		}
	}
}

func TestValidateTimeOfDay_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"24:00",
		"12:60",
		"9am",
		"09:00:00",
		"not-a-time",
	}

	for _, s := range testCases {
		if err := ValidateTimeOfDay(s); err == nil {
			t.Errorf("ValidateTimeOfDay(%q) error = nil, want error", s)
		}
	}
}

func TestValidateTimezone_Valid(t *testing.T) {
	testCases := []string{"UTC", "Europe/Riga", "America/New_York", "Asia/Tokyo"}

	for _, s := range testCases {
		if err := ValidateTimezone(s); err != nil {
			t.Errorf("ValidateTimezone(%q) error = %v, want nil", s, err)
		}
	}
}

func TestValidateTimezone_Invalid(t *testing.T) {
	testCases := []string{"", "Mars/Olympus", "GMT+3:00", "not a zone"}

	for _, s := range testCases {
		if err := ValidateTimezone(s); err == nil {
			t.Errorf("ValidateTimezone(%q) error = nil, want error", s)
		}
	}
}

func TestValidateRepeatPattern(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly", "custom"} {
		if err := ValidateRepeatPattern(s); err != nil {
			t.Errorf("ValidateRepeatPattern(%q) error = %v, want nil", s, err)
		}
	}

	for _, s := range []string{"", "hourly", "Daily", "every other day"} {
		if err := ValidateRepeatPattern(s); err == nil {
			t.Errorf("ValidateRepeatPattern(%q) error = nil, want error", s)
		}
	}
}
