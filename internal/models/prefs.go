package models

import (
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
)

// ReminderPrefs holds one user's reminder settings: how many reminders per
// day and at which times.
type ReminderPrefs struct {
	UserID          string   `json:"user_id"`
	FrequencyPerDay int      `json:"frequency_per_day"`
	Times           []string `json:"times"` // HH:MM, at most FrequencyPerDay entries
	Enabled         bool     `json:"enabled"`
}

// DefaultReminderPrefs returns the default preferences for a user: one
// reminder per day at 13:00.
func DefaultReminderPrefs(userID string) ReminderPrefs {
	return ReminderPrefs{
		UserID:          userID,
		FrequencyPerDay: 1,
		Times:           []string{constants.DefaultReminderTime},
		Enabled:         true,
	}
}

func (p *ReminderPrefs) Validate() error {
	if p.FrequencyPerDay < constants.MinRemindersPerDay || p.FrequencyPerDay > constants.MaxRemindersPerDay {
		return fmt.Errorf("frequency per day must be between %d and %d",
			constants.MinRemindersPerDay, constants.MaxRemindersPerDay)
	}
	if len(p.Times) > constants.MaxRemindersPerDay {
		return fmt.Errorf("at most %d reminder times are allowed", constants.MaxRemindersPerDay)
	}
	for _, t := range p.Times {
		if _, err := time.Parse(constants.TimeFormat, t); err != nil {
			return fmt.Errorf("invalid reminder time %q (expected HH:MM): %w", t, err)
		}
	}
	return nil
}

// Clamp forces the frequency into the allowed range in place.
func (p *ReminderPrefs) Clamp() {
	if p.FrequencyPerDay < constants.MinRemindersPerDay {
		p.FrequencyPerDay = constants.MinRemindersPerDay
	}
	if p.FrequencyPerDay > constants.MaxRemindersPerDay {
		p.FrequencyPerDay = constants.MaxRemindersPerDay
	}
}

// Slots returns exactly FrequencyPerDay reminder times (after clamping), in
// preference order. Extra times are truncated; missing slots are padded with
// the default time.
func (p *ReminderPrefs) Slots() []string {
	n := p.FrequencyPerDay
	if n < constants.MinRemindersPerDay {
		n = constants.MinRemindersPerDay
	}
	if n > constants.MaxRemindersPerDay {
		n = constants.MaxRemindersPerDay
	}

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(p.Times) {
			out = append(out, p.Times[i])
		} else {
			out = append(out, constants.DefaultReminderTime)
		}
	}
	return out
}
