package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

func (s *Store) AddGroup(group models.Group) error {
	if err := group.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO groups (id, name, join_code, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		group.ID, group.Name, group.JoinCode, group.OwnerID,
		group.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return wrapConnErr(fmt.Errorf("failed to insert group: %w", err))
	}

	return nil
}

func (s *Store) scanGroup(row *sql.Row) (models.Group, error) {
	var g models.Group
	var createdAt string

	err := row.Scan(&g.ID, &g.Name, &g.JoinCode, &g.OwnerID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Group{}, fmt.Errorf("group: %w", apperrors.ErrNotFound)
		}
		return models.Group{}, wrapConnErr(err)
	}

	g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Group{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return g, nil
}

func (s *Store) GetGroup(id string) (models.Group, error) {
	row := s.db.QueryRow(`
		SELECT id, name, join_code, owner_id, created_at
		FROM groups WHERE id = $1`, id)
	return s.scanGroup(row)
}

func (s *Store) GetGroupByJoinCode(code string) (models.Group, error) {
	row := s.db.QueryRow(`
		SELECT id, name, join_code, owner_id, created_at
		FROM groups WHERE join_code = $1`, code)
	return s.scanGroup(row)
}

func (s *Store) GetGroupsForUser(userID string) ([]models.Group, error) {
	rows, err := s.db.Query(`
		SELECT g.id, g.name, g.join_code, g.owner_id, g.created_at
		FROM groups g
		JOIN memberships m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at`, userID)
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

func (s *Store) DeleteGroup(id string) error {
	result, err := s.db.Exec(`DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return wrapConnErr(fmt.Errorf("failed to delete group: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("group: %w", apperrors.ErrNotFound)
	}

	return nil
}

func (s *Store) AddMembership(m models.Membership) error {
	_, err := s.db.Exec(`
		INSERT INTO memberships (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_id, user_id) DO NOTHING`,
		m.GroupID, m.UserID, m.JoinedAt.Format(time.RFC3339))
	if err != nil {
		return wrapConnErr(fmt.Errorf("failed to insert membership: %w", err))
	}
	return nil
}

func (s *Store) GetMemberships(groupID string) ([]models.Membership, error) {
	rows, err := s.db.Query(`
		SELECT group_id, user_id, joined_at
		FROM memberships WHERE group_id = $1
		ORDER BY joined_at`, groupID)
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

func (s *Store) IsMember(groupID, userID string) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT count(*) FROM memberships WHERE group_id = $1 AND user_id = $2`,
		groupID, userID).Scan(&count)
	if err != nil {
		return false, wrapConnErr(err)
	}
	return count > 0, nil
}
