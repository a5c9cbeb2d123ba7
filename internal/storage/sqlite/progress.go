package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

func (s *Store) GetProgress(practiceID, userID, day string) (models.ProgressEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, practice_id, user_id, day, count, completed, created_at, updated_at
		FROM progress_entries WHERE practice_id = ? AND user_id = ? AND day = ?`,
		practiceID, userID, day)

	e, err := scanProgress(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProgressEntry{}, fmt.Errorf("progress entry: %w", apperrors.ErrNotFound)
		}
		return models.ProgressEntry{}, err
	}
	return e, nil
}

func scanProgress(scan func(dest ...any) error) (models.ProgressEntry, error) {
	var e models.ProgressEntry
	var createdAt, updatedAt string

	err := scan(&e.ID, &e.PracticeID, &e.UserID, &e.Day, &e.Count, &e.Completed, &createdAt, &updatedAt)
	if err != nil {
		return models.ProgressEntry{}, err
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.ProgressEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.ProgressEntry{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return e, nil
}

func (s *Store) GetProgressForDay(userID, day string) ([]models.ProgressEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, practice_id, user_id, day, count, completed, created_at, updated_at
		FROM progress_entries WHERE user_id = ? AND day = ?
		ORDER BY created_at`, userID, day)
	if err != nil {
		return nil, err
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

func (s *Store) UpsertProgress(e models.ProgressEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO progress_entries (id, practice_id, user_id, day, count, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(practice_id, user_id, day) DO UPDATE SET
			count = excluded.count,
			completed = excluded.completed,
			updated_at = excluded.updated_at`,
		e.ID, e.PracticeID, e.UserID, e.Day, e.Count, e.Completed,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert progress entry: %w", err)
	}

	return nil
}

func (s *Store) DeleteProgress(practiceID, userID, day string) error {
	result, err := s.db.Exec(`
		DELETE FROM progress_entries WHERE practice_id = ? AND user_id = ? AND day = ?`,
		practiceID, userID, day)
	if err != nil {
		return fmt.Errorf("failed to delete progress entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("progress entry: %w", apperrors.ErrNotFound)
	}

	return nil
}
