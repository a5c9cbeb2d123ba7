package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/praxishq/praxis-cli/internal/models"
)

// GetReminderPrefs returns the user's reminder preferences, falling back to
// the defaults when none are stored yet.
func (s *Store) GetReminderPrefs(userID string) (models.ReminderPrefs, error) {
	row := s.db.QueryRow(`
		SELECT user_id, frequency_per_day, times, enabled
		FROM reminder_prefs WHERE user_id = $1`, userID)

	var p models.ReminderPrefs
	var timesJSON string

	err := row.Scan(&p.UserID, &p.FrequencyPerDay, &timesJSON, &p.Enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultReminderPrefs(userID), nil
		}
		return models.ReminderPrefs{}, wrapConnErr(err)
	}

	if err := json.Unmarshal([]byte(timesJSON), &p.Times); err != nil {
		return models.ReminderPrefs{}, fmt.Errorf("failed to unmarshal reminder times: %w", err)
	}

	return p, nil
}

func (s *Store) SaveReminderPrefs(p models.ReminderPrefs) error {
	if err := p.Validate(); err != nil {
		return err
	}

	timesJSON, err := json.Marshal(p.Times)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder times: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO reminder_prefs (user_id, frequency_per_day, times, enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			frequency_per_day = excluded.frequency_per_day,
			times = excluded.times,
			enabled = excluded.enabled`,
		p.UserID, p.FrequencyPerDay, string(timesJSON), p.Enabled)
	if err != nil {
		return wrapConnErr(fmt.Errorf("failed to save reminder prefs: %w", err))
	}

	return nil
}
