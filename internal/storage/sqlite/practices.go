package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

const practiceColumns = `id, group_id, title, start_date, end_date, freq_min, freq_max, number_of_days, display_order, created_at`

func scanPractice(scan func(dest ...any) error) (models.Practice, error) {
	var p models.Practice
	var displayOrder sql.NullInt64
	var createdAt string

	err := scan(&p.ID, &p.GroupID, &p.Title, &p.StartDate, &p.EndDate,
		&p.Frequency.Min, &p.Frequency.Max, &p.NumberOfDays, &displayOrder, &createdAt)
	if err != nil {
		return models.Practice{}, err
	}

	if displayOrder.Valid {
		order := int(displayOrder.Int64)
		p.DisplayOrder = &order
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Practice{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return p, nil
}

func (s *Store) AddPractice(p models.Practice) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var displayOrder sql.NullInt64
	if p.DisplayOrder != nil {
		displayOrder = sql.NullInt64{Int64: int64(*p.DisplayOrder), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO practices (`+practiceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.GroupID, p.Title, p.StartDate, p.EndDate,
		p.Frequency.Min, p.Frequency.Max, p.NumberOfDays, displayOrder,
		p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert practice: %w", err)
	}

	return nil
}

func (s *Store) GetPractice(id string) (models.Practice, error) {
	row := s.db.QueryRow(`SELECT `+practiceColumns+` FROM practices WHERE id = ?`, id)

	p, err := scanPractice(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Practice{}, fmt.Errorf("practice: %w", apperrors.ErrNotFound)
		}
		return models.Practice{}, err
	}
	return p, nil
}

// GetPracticesForGroup lists a group's practices in display order: explicit
// positions first (ascending), unordered rows last, newest-first within ties.
func (s *Store) GetPracticesForGroup(groupID string) ([]models.Practice, error) {
	rows, err := s.db.Query(`
		SELECT `+practiceColumns+` FROM practices
		WHERE group_id = ?
		ORDER BY display_order IS NULL, display_order ASC, created_at DESC`, groupID)
	if err != nil {
		return nil, err
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

func (s *Store) UpdatePractice(p models.Practice) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var displayOrder sql.NullInt64
	if p.DisplayOrder != nil {
		displayOrder = sql.NullInt64{Int64: int64(*p.DisplayOrder), Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE practices SET
			title = ?, start_date = ?, end_date = ?,
			freq_min = ?, freq_max = ?, number_of_days = ?, display_order = ?
		WHERE id = ?`,
		p.Title, p.StartDate, p.EndDate,
		p.Frequency.Min, p.Frequency.Max, p.NumberOfDays, displayOrder, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update practice: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("practice: %w", apperrors.ErrNotFound)
	}

	return nil
}

func (s *Store) DeletePractice(id string) error {
	result, err := s.db.Exec(`DELETE FROM practices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete practice: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("practice: %w", apperrors.ErrNotFound)
	}

	return nil
}

func (s *Store) SetDisplayOrder(practiceID string, position int) error {
	result, err := s.db.Exec(`UPDATE practices SET display_order = ? WHERE id = ?`,
		position, practiceID)
	if err != nil {
		return fmt.Errorf("failed to set display order: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("practice: %w", apperrors.ErrNotFound)
	}

	return nil
}

// MaxDisplayOrder returns the highest assigned position in the group, 0 when
// no practice has a position yet.
func (s *Store) MaxDisplayOrder(groupID string) (int, error) {
	var max sql.NullInt64
	err := s.db.QueryRow(`
		SELECT MAX(display_order) FROM practices WHERE group_id = ?`, groupID).Scan(&max)
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64), nil
}

// GetActivePractices returns practices from the user's groups whose
// effective range ends on or after day, with the override range already
// applied to StartDate/EndDate.
func (s *Store) GetActivePractices(userID, day string) ([]models.Practice, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.group_id, p.title,
		       COALESCE(o.start_date, p.start_date),
		       COALESCE(o.end_date, p.end_date),
		       p.freq_min, p.freq_max, p.number_of_days, p.display_order, p.created_at
		FROM practices p
		JOIN memberships m ON m.group_id = p.group_id AND m.user_id = ?
		LEFT JOIN practice_overrides o ON o.practice_id = p.id AND o.user_id = ?
		WHERE COALESCE(o.end_date, p.end_date) >= ?
		ORDER BY p.created_at`, userID, userID, day)
	if err != nil {
		return nil, err
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
