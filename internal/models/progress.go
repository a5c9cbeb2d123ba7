package models

import (
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
)

// ProgressEntry records one user's progress on a practice for one calendar
// day. Unique per (user, practice, day); never visible to other members.
type ProgressEntry struct {
	ID         string    `json:"id"`
	PracticeID string    `json:"practice_id"`
	UserID     string    `json:"user_id"`
	Day        string    `json:"day"` // YYYY-MM-DD
	Count      int       `json:"count"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (e *ProgressEntry) Validate() error {
	if e.PracticeID == "" {
		return fmt.Errorf("progress entry must reference a practice")
	}
	if e.UserID == "" {
		return fmt.Errorf("progress entry must belong to a user")
	}
	if _, err := time.Parse(constants.DateFormat, e.Day); err != nil {
		return fmt.Errorf("invalid day (expected YYYY-MM-DD): %w", err)
	}
	if e.Count < 0 {
		return fmt.Errorf("progress count cannot be negative")
	}
	return nil
}
