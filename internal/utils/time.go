package utils

import (
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
)

// Today returns the current date string (YYYY-MM-DD) in the given location.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(constants.DateFormat)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) at midnight in the
// specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string (HH:MM)
// into a single time.Time in the specified timezone.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}

// AddDays shifts a date string (YYYY-MM-DD) by n calendar days.
func AddDays(dateStr string, n int) (string, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// DaysBetween returns the inclusive day count from start to end
// (both YYYY-MM-DD). It returns 0 when end precedes start.
func DaysBetween(start, end string) (int, error) {
	s, err := time.Parse(constants.DateFormat, start)
	if err != nil {
		return 0, err
	}
	e, err := time.Parse(constants.DateFormat, end)
	if err != nil {
		return 0, err
	}
	if e.Before(s) {
		return 0, nil
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// DateRange lists every date string (YYYY-MM-DD) from start to end inclusive.
// The range is empty when end precedes start.
func DateRange(start, end string) ([]string, error) {
	s, err := time.Parse(constants.DateFormat, start)
	if err != nil {
		return nil, err
	}
	e, err := time.Parse(constants.DateFormat, end)
	if err != nil {
		return nil, err
	}

	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(constants.DateFormat))
	}
	return days, nil
}

// MaxDate returns the later of two date strings (YYYY-MM-DD). Lexicographic
// comparison is correct for the format.
func MaxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
