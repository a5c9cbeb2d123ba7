package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if storage.IsPostgresConnString(dbPath) {
			return fmt.Errorf("--force only applies to local SQLite storage")
		}
		// Refuse to wipe the database we are about to migrate from.
		if c.Source != "" {
			absDB, err1 := filepath.Abs(dbPath)
			absSource, err2 := filepath.Abs(c.Source)
			if err1 == nil && err2 == nil && absDB == absSource {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized praxis storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := migrateData(ctx.Store, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func migrateData(dest storage.Provider, source string) error {
	var sourceStore storage.Provider
	if storage.IsPostgresConnString(source) {
		if storage.HasEmbeddedCredentials(source) {
			return fmt.Errorf("source connection string contains embedded credentials, use the keyring, environment variables or .pgpass instead")
		}
		sourceStore = storage.NewPostgresStore(source)
	} else {
		sourceStore = storage.NewSQLiteStore(source)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating groups...")
	groups, err := sourceStore.GetAllGroups()
	if err != nil {
		return fmt.Errorf("failed to get groups from source: %w", err)
	}
	for _, g := range groups {
		if err := dest.AddGroup(g); err != nil {
			return fmt.Errorf("failed to add group %s: %w", g.ID, err)
		}
	}
	fmt.Printf("    Migrated %d groups\n", len(groups))

	fmt.Println("  Migrating memberships...")
	members, err := sourceStore.GetAllMemberships()
	if err != nil {
		return fmt.Errorf("failed to get memberships from source: %w", err)
	}
	for _, m := range members {
		if err := dest.AddMembership(m); err != nil {
			return fmt.Errorf("failed to add membership %s/%s: %w", m.GroupID, m.UserID, err)
		}
	}
	fmt.Printf("    Migrated %d memberships\n", len(members))

	fmt.Println("  Migrating practices...")
	practices, err := sourceStore.GetAllPractices()
	if err != nil {
		return fmt.Errorf("failed to get practices from source: %w", err)
	}
	for _, p := range practices {
		if err := dest.AddPractice(p); err != nil {
			return fmt.Errorf("failed to add practice %s: %w", p.ID, err)
		}
	}
	fmt.Printf("    Migrated %d practices\n", len(practices))

	fmt.Println("  Migrating overrides...")
	overrides, err := sourceStore.GetAllOverrides()
	if err != nil {
		return fmt.Errorf("failed to get overrides from source: %w", err)
	}
	for _, o := range overrides {
		if err := dest.UpsertOverride(o); err != nil {
			return fmt.Errorf("failed to add override %s: %w", o.ID, err)
		}
	}
	fmt.Printf("    Migrated %d overrides\n", len(overrides))

	fmt.Println("  Migrating progress entries...")
	entries, err := sourceStore.GetAllProgress()
	if err != nil {
		return fmt.Errorf("failed to get progress entries from source: %w", err)
	}
	for _, e := range entries {
		if err := dest.UpsertProgress(e); err != nil {
			return fmt.Errorf("failed to add progress entry %s: %w", e.ID, err)
		}
	}
	fmt.Printf("    Migrated %d progress entries\n", len(entries))

	fmt.Println("  Migrating reminder preferences...")
	prefs, err := sourceStore.GetAllReminderPrefs()
	if err != nil {
		return fmt.Errorf("failed to get reminder preferences from source: %w", err)
	}
	for _, p := range prefs {
		if err := dest.SaveReminderPrefs(p); err != nil {
			return fmt.Errorf("failed to save reminder preferences for %s: %w", p.UserID, err)
		}
	}
	fmt.Printf("    Migrated %d reminder preferences\n", len(prefs))

	return nil
}
