package models

import (
	"fmt"
	"time"
)

// Session identifies the signed-in user. The session file lives in the
// config dir; the access token is kept in the OS keyring, never on disk.
type Session struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("session user id cannot be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("session name cannot be empty")
	}
	return nil
}
