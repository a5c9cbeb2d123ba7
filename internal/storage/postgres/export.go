package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/models"
)

// Bulk readers backing 'praxis init --source'. They dump whole tables with
// no per-user filtering, so nothing outside the migration path should call
// them.

func (s *Store) GetAllGroups() ([]models.Group, error) {
	rows, err := s.db.Query(`
		SELECT id, name, join_code, owner_id, created_at
		FROM groups ORDER BY created_at`)
	if err != nil {
		return nil, wrapConnErr(err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		var createdAt string

		if err := rows.Scan(&g.ID, &g.Name, &g.JoinCode, &g.OwnerID, &createdAt); err != nil {
			return nil, err
		}
		g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for group %s: %w", g.ID, err)
		}

		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (s *Store) GetAllMemberships() ([]models.Membership, error) {
	rows, err := s.db.Query(`
		SELECT group_id, user_id, joined_at
		FROM memberships ORDER BY joined_at`)
	if err != nil {
		return nil, wrapConnErr(err)
	}
	defer rows.Close()

	var members []models.Membership
	for rows.Next() {
		var m models.Membership
		var joinedAt string

		if err := rows.Scan(&m.GroupID, &m.UserID, &joinedAt); err != nil {
			return nil, err
		}
		m.JoinedAt, err = time.Parse(time.RFC3339, joinedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse joined_at: %w", err)
		}

		members = append(members, m)
	}

	return members, rows.Err()
}

func (s *Store) GetAllPractices() ([]models.Practice, error) {
	rows, err := s.db.Query(`SELECT ` + practiceColumns + ` FROM practices ORDER BY created_at`)
	if err != nil {
		return nil, wrapConnErr(err)
	}
	defer rows.Close()

	var practices []models.Practice
	for rows.Next() {
		p, err := scanPractice(rows.Scan)
		if err != nil {
			return nil, err
		}
		practices = append(practices, p)
	}

	return practices, rows.Err()
}

func (s *Store) GetAllOverrides() ([]models.PracticeOverride, error) {
	rows, err := s.db.Query(`
		SELECT id, practice_id, user_id, start_date, end_date, created_at, updated_at
		FROM practice_overrides ORDER BY created_at`)
	if err != nil {
		return nil, wrapConnErr(err)
	}
	defer rows.Close()

	var overrides []models.PracticeOverride
	for rows.Next() {
		var o models.PracticeOverride
		var createdAt, updatedAt string

		if err := rows.Scan(&o.ID, &o.PracticeID, &o.UserID, &o.StartDate, &o.EndDate, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		o.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		o.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		overrides = append(overrides, o)
	}

	return overrides, rows.Err()
}

func (s *Store) GetAllProgress() ([]models.ProgressEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, practice_id, user_id, day, count, completed, created_at, updated_at
		FROM progress_entries ORDER BY day`)
	if err != nil {
		return nil, wrapConnErr(err)
	}
	defer rows.Close()

	var entries []models.ProgressEntry
	for rows.Next() {
		e, err := scanProgress(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) GetAllReminderPrefs() ([]models.ReminderPrefs, error) {
	rows, err := s.db.Query(`
		SELECT user_id, frequency_per_day, times, enabled
		FROM reminder_prefs ORDER BY user_id`)
	if err != nil {
		return nil, wrapConnErr(err)
	}
	defer rows.Close()

	var prefs []models.ReminderPrefs
	for rows.Next() {
		var p models.ReminderPrefs
		var timesJSON string

		if err := rows.Scan(&p.UserID, &p.FrequencyPerDay, &timesJSON, &p.Enabled); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(timesJSON), &p.Times); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reminder times: %w", err)
		}

		prefs = append(prefs, p)
	}

	return prefs, rows.Err()
}
