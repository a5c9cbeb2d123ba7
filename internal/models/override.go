package models

import (
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
)

// PracticeOverride is a member's personal date range for a practice. At most
// one exists per (user, practice); the range must lie within the practice's
// default range.
type PracticeOverride struct {
	ID         string    `json:"id"`
	PracticeID string    `json:"practice_id"`
	UserID     string    `json:"user_id"`
	StartDate  string    `json:"start_date"` // YYYY-MM-DD
	EndDate    string    `json:"end_date"`   // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (o *PracticeOverride) Validate() error {
	if o.PracticeID == "" {
		return fmt.Errorf("override must reference a practice")
	}
	if o.UserID == "" {
		return fmt.Errorf("override must belong to a user")
	}

	start, err := time.Parse(constants.DateFormat, o.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %w", err)
	}
	end, err := time.Parse(constants.DateFormat, o.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", o.EndDate, o.StartDate)
	}

	return nil
}

// SpanDays returns the inclusive day count of the override range.
func (o *PracticeOverride) SpanDays() int {
	start, err1 := time.Parse(constants.DateFormat, o.StartDate)
	end, err2 := time.Parse(constants.DateFormat, o.EndDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
