package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/praxishq/praxis-cli/internal/keyring"
	"github.com/praxishq/praxis-cli/internal/models"
)

// ErrNoSession is returned when no user is signed in.
var ErrNoSession = errors.New("no active session, run 'praxis login' first")

const sessionFileName = "session.json"

// Manager resolves the current user from the session file in the config dir.
// The access token lives in the OS keyring, never in the file.
type Manager struct {
	configDir string
}

func NewManager(configDir string) *Manager {
	return &Manager{configDir: configDir}
}

func (m *Manager) sessionPath() string {
	return filepath.Join(m.configDir, sessionFileName)
}

// CurrentUser returns the signed-in user's session, or ErrNoSession.
func (m *Manager) CurrentUser() (models.Session, error) {
	data, err := os.ReadFile(m.sessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("session file is malformed: %w", err)
	}
	if err := session.Validate(); err != nil {
		return models.Session{}, fmt.Errorf("session file is invalid: %w", err)
	}

	return session, nil
}

// Login persists the session and stores the access token in the OS keyring.
// An empty token is allowed for local-only (SQLite) use.
func (m *Manager) Login(session models.Session, token string) error {
	if session.UserID == "" {
		session.UserID = uuid.New().String()
	}
	if err := session.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(m.configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.sessionPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if token != "" {
		if err := keyring.SetSessionToken(token); err != nil {
			return err
		}
	}

	return nil
}

// Logout removes the session file and the keyring token.
func (m *Manager) Logout() error {
	if err := os.Remove(m.sessionPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	if err := keyring.DeleteSessionToken(); err != nil && err != keyring.ErrNotFound {
		return err
	}
	return nil
}
