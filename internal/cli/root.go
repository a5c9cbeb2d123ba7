package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/praxishq/praxis-cli/internal/backup"
	"github.com/praxishq/praxis-cli/internal/constants"
	"github.com/praxishq/praxis-cli/internal/identity"
	"github.com/praxishq/praxis-cli/internal/logger"
	"github.com/praxishq/praxis-cli/internal/models"
	"github.com/praxishq/praxis-cli/internal/notifier"
	"github.com/praxishq/praxis-cli/internal/ordering"
	"github.com/praxishq/praxis-cli/internal/reminders"
	"github.com/praxishq/praxis-cli/internal/storage"
)

// Output styles shared by the command packages.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	FaintStyle   = lipgloss.NewStyle().Faint(true)
)

type Context struct {
	Store    storage.Provider
	Identity *identity.Manager
	Debug    bool
}

// RequireUser returns the active session or an error telling the user to log in.
func (c *Context) RequireUser() (models.Session, error) {
	session, err := c.Identity.CurrentUser()
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// OrderingService builds the display-order service over the active store.
func (c *Context) OrderingService() *ordering.Service {
	return ordering.New(c.Store)
}

// ReminderService builds the reminder service: schedules are computed from the
// active store and registered in the local JSON registry next to the database.
func (c *Context) ReminderService() *reminders.Service {
	return reminders.New(c.Store, c.Registry(), notifier.New())
}

// Registry returns the local reminder registry.
func (c *Context) Registry() *notifier.Registry {
	dir := filepath.Dir(c.Store.GetConfigPath())
	return notifier.NewRegistry(filepath.Join(dir, constants.RegistryFileName))
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors. Hosted Postgres deployments are backed up server-side, so only the
// local SQLite database is snapshotted.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if storage.IsPostgresConnString(path) {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Confirm prompts for a yes/no answer, defaulting to no.
func Confirm(title string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation aborted: %w", err)
	}
	return confirmed, nil
}
