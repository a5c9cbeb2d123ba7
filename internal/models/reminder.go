package models

import "time"

// ScheduledReminder is one notification instance registered with the local
// notification registry. Instances are ephemeral: every refresh cancels the
// previous set and registers a new one.
type ScheduledReminder struct {
	ID         string    `json:"id"`
	PracticeID string    `json:"practice_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	FireAt     time.Time `json:"fire_at"`
	Delivered  bool      `json:"delivered,omitempty"`
}
