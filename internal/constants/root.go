package constants

import "time"

const (
	AppName            = "praxis"
	DefaultKeyringUser = "database-connection"
	SessionKeyringUser = "session-token"
	DefaultConfigPath  = "~/.config/praxis/praxis.db"
	Version            = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Reminder preference bounds
	MinRemindersPerDay  = 1
	MaxRemindersPerDay  = 3
	DefaultReminderTime = "13:00"

	// Join code constants. The alphabet skips easily-confused characters
	// (I, L, O, 0, 1); uniqueness is enforced by the database.
	JoinCodeLength   = 6
	JoinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "praxis-"
	BackupFileSuffix = ".db"

	// Agent / notification constants
	AgentLockfileName      = "praxis-agent.lock"
	AgentIdentifier        = "com.praxishq.praxis"
	NotificationDurationMs = 5000
	RegistryFileName       = "reminders.json"

	// WatchInterval is the cron spec for the reminders watch loop.
	WatchInterval = "@every 1m"

	// DeliveryGracePeriod is how far past its fire time a reminder may still
	// be delivered by the watch loop before being dropped as stale.
	DeliveryGracePeriod = 15 * time.Minute
)
