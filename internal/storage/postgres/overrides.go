package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

func (s *Store) UpsertOverride(o models.PracticeOverride) error {
	if err := o.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO practice_overrides (id, practice_id, user_id, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (practice_id, user_id) DO UPDATE SET
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			updated_at = excluded.updated_at`,
		o.ID, o.PracticeID, o.UserID, o.StartDate, o.EndDate,
		o.CreatedAt.Format(time.RFC3339), o.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return wrapConnErr(fmt.Errorf("failed to upsert override: %w", err))
	}

	return nil
}

func (s *Store) GetOverride(practiceID, userID string) (models.PracticeOverride, error) {
	row := s.db.QueryRow(`
		SELECT id, practice_id, user_id, start_date, end_date, created_at, updated_at
		FROM practice_overrides WHERE practice_id = $1 AND user_id = $2`,
		practiceID, userID)

	var o models.PracticeOverride
	var createdAt, updatedAt string

	err := row.Scan(&o.ID, &o.PracticeID, &o.UserID, &o.StartDate, &o.EndDate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PracticeOverride{}, fmt.Errorf("override: %w", apperrors.ErrNotFound)
		}
		return models.PracticeOverride{}, wrapConnErr(err)
	}

	o.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.PracticeOverride{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	o.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.PracticeOverride{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return o, nil
}

func (s *Store) DeleteOverride(practiceID, userID string) error {
	result, err := s.db.Exec(`
		DELETE FROM practice_overrides WHERE practice_id = $1 AND user_id = $2`,
		practiceID, userID)
	if err != nil {
		return wrapConnErr(fmt.Errorf("failed to delete override: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("override: %w", apperrors.ErrNotFound)
	}

	return nil
}
