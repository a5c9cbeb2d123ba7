package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/backups"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	"github.com/praxishq/praxis-cli/internal/cli/practices"
	"github.com/praxishq/praxis-cli/internal/cli/prefs"
	"github.com/praxishq/praxis-cli/internal/cli/progress"
	"github.com/praxishq/praxis-cli/internal/cli/reminders"
	"github.com/praxishq/praxis-cli/internal/cli/system"
	"github.com/praxishq/praxis-cli/internal/constants"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/identity"
	"github.com/praxishq/praxis-cli/internal/keyring"
	"github.com/praxishq/praxis-cli/internal/logger"
	"github.com/praxishq/praxis-cli/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring, environment variables, or .pgpass instead." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize praxis storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Debugs  system.DebugCmd   `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Login   system.LoginCmd   `cmd:"" help:"Sign in as a user."`
	Logout  system.LogoutCmd  `cmd:"" help:"Sign out the current user."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
	Group struct {
		Create  groups.GroupCreateCmd  `cmd:"" help:"Create a new group."`
		Join    groups.GroupJoinCmd    `cmd:"" help:"Join a group by its join code."`
		List    groups.GroupListCmd    `cmd:"" help:"List your groups." default:"1"`
		Members groups.GroupMembersCmd `cmd:"" help:"List a group's members."`
		Delete  groups.GroupDeleteCmd  `cmd:"" help:"Delete a group you own."`
	} `cmd:"" help:"Manage practice groups."`
	Practice struct {
		Add     practices.PracticeAddCmd     `cmd:"" help:"Add a practice to a group you own."`
		Edit    practices.PracticeEditCmd    `cmd:"" help:"Edit a practice in a group you own."`
		List    practices.PracticeListCmd    `cmd:"" help:"List a group's practices in display order." default:"1"`
		Delete  practices.PracticeDeleteCmd  `cmd:"" help:"Delete a practice from a group you own."`
		Reorder practices.PracticeReorderCmd `cmd:"" help:"Reorder a group's practices."`
		Range   practices.PracticeRangeCmd   `cmd:"" help:"Set or clear your personal date range for a practice."`
	} `cmd:"" help:"Manage practices."`
	Progress struct {
		Done  progress.ProgressDoneCmd  `cmd:"" help:"Mark a practice done for the day."`
		Add   progress.ProgressAddCmd   `cmd:"" help:"Record one occurrence without marking the day done."`
		Clear progress.ProgressClearCmd `cmd:"" help:"Clear your progress for a day."`
		Show  progress.ProgressShowCmd  `cmd:"" help:"Show your progress for a day." default:"1"`
	} `cmd:"" help:"Track your practice progress."`
	Prefs struct {
		Show prefs.PrefsShowCmd `cmd:"" help:"Show your reminder preferences." default:"1"`
		Set  prefs.PrefsSetCmd  `cmd:"" help:"Update your reminder preferences."`
	} `cmd:"" help:"Manage reminder preferences."`
	Reminders struct {
		Refresh reminders.ReminderRefreshCmd `cmd:"" help:"Recompute and reschedule all reminders." default:"1"`
		List    reminders.ReminderListCmd    `cmd:"" help:"List scheduled reminders."`
		Watch   reminders.ReminderWatchCmd   `cmd:"" help:"Deliver due reminders until interrupted."`
		Fire    reminders.ReminderFireCmd    `cmd:"" hidden:"" help:"Deliver due reminders once (used internally)."`
	} `cmd:"" help:"Manage practice reminders."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Group ethics-practice tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	config := resolveConfig(CLI.Config)

	var store storage.Provider
	if storage.IsPostgresConnString(config) {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintf(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use one of these alternatives:\n")
			fmt.Fprintf(os.Stderr, "       1. OS keyring:    praxis keyring set \"postgresql://user@host:5432/praxis\"\n")
			fmt.Fprintf(os.Stderr, "       2. Environment:   export PGPASSWORD=...\n")
			fmt.Fprintf(os.Stderr, "       3. .pgpass file:  use a connection string without a password\n")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(config)
	} else {
		store = storage.NewSQLiteStore(config)
	}

	configDir := filepath.Dir(config)
	if storage.IsPostgresConnString(config) {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configDir = filepath.Join(home, ".config", constants.AppName)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:    store,
		Identity: identity.NewManager(configDir),
		Debug:    CLI.Debug,
	}

	// Init handles its own loading; every other command needs the store open.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// resolveConfig picks the effective database location: an explicit --config
// wins, then the PRAXIS_DB_CONNECTION environment variable, then a connection
// string from the OS keyring, then the default path. A leading ~ is expanded
// for file paths.
func resolveConfig(config string) string {
	if config == constants.DefaultConfigPath {
		if connStr := os.Getenv("PRAXIS_DB_CONNECTION"); connStr != "" {
			return connStr
		}
		if connStr, err := keyring.GetConnectionString(); err == nil {
			return connStr
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring lookup failed", "error", err)
		}
	}

	if strings.HasPrefix(config, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, config[2:])
		}
	}
	return config
}
