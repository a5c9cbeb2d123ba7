package storage

import "github.com/praxishq/praxis-cli/internal/models"

// Provider is the generic query surface the rest of the client talks to.
// Both backends implement it: the local SQLite database and the hosted
// Postgres database (where row-level security is enforced server-side).
// Writes the caller is not entitled to are additionally gated client-side
// by the service layer.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Groups
	AddGroup(models.Group) error
	GetGroup(id string) (models.Group, error)
	GetGroupByJoinCode(code string) (models.Group, error)
	GetGroupsForUser(userID string) ([]models.Group, error)
	// DeleteGroup removes the group; practices, overrides and progress
	// cascade via foreign keys.
	DeleteGroup(id string) error

	// Memberships
	AddMembership(models.Membership) error
	GetMemberships(groupID string) ([]models.Membership, error)
	IsMember(groupID, userID string) (bool, error)

	// Practices. GetPracticesForGroup returns rows ordered by display_order
	// ascending with nulls last, ties broken by created_at descending.
	AddPractice(models.Practice) error
	GetPractice(id string) (models.Practice, error)
	GetPracticesForGroup(groupID string) ([]models.Practice, error)
	UpdatePractice(models.Practice) error
	DeletePractice(id string) error
	SetDisplayOrder(practiceID string, position int) error
	MaxDisplayOrder(groupID string) (int, error)

	// Per-user overrides
	UpsertOverride(models.PracticeOverride) error
	GetOverride(practiceID, userID string) (models.PracticeOverride, error)
	DeleteOverride(practiceID, userID string) error

	// Progress
	GetProgress(practiceID, userID, day string) (models.ProgressEntry, error)
	GetProgressForDay(userID, day string) ([]models.ProgressEntry, error)
	UpsertProgress(models.ProgressEntry) error
	DeleteProgress(practiceID, userID, day string) error

	// Reminder preferences
	GetReminderPrefs(userID string) (models.ReminderPrefs, error)
	SaveReminderPrefs(models.ReminderPrefs) error

	// GetActivePractices returns every practice in the user's groups whose
	// effective range (override applied) ends on or after day. Start and
	// end dates in the result are already resolved per-user.
	GetActivePractices(userID, day string) ([]models.Practice, error)

	// Bulk export, used by init --source migration only.
	GetAllGroups() ([]models.Group, error)
	GetAllMemberships() ([]models.Membership, error)
	GetAllPractices() ([]models.Practice, error)
	GetAllOverrides() ([]models.PracticeOverride, error)
	GetAllProgress() ([]models.ProgressEntry, error)
	GetAllReminderPrefs() ([]models.ReminderPrefs, error)

	// Utils
	GetConfigPath() string
}
