package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/praxishq/praxis-cli/internal/backup"
	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/migration"
	"github.com/praxishq/praxis-cli/internal/storage"
	"github.com/praxishq/praxis-cli/internal/storage/sqlite"
	"github.com/praxishq/praxis-cli/migrations"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if dbReachable {
		if err := checkOrphanedRows(ctx); err != nil {
			fmt.Printf("❌ Referential integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Referential integrity: OK\n")
		}

		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}

		if err := checkProgressDuplicates(ctx); err != nil {
			fmt.Printf("❌ Progress duplicates: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Progress duplicates: OK\n")
		}
	} else {
		fmt.Printf("⊘ Referential integrity: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Progress duplicates: SKIPPED (database not reachable)\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// Hosted databases are migrated server-side.
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	runner := migration.NewRunner(db, subFS)

	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'praxis migrate')", current, latest)
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		return nil
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'praxis backup create'")
	}

	return nil
}

func checkOrphanedRows(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var orphaned int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM practices p
		LEFT JOIN groups g ON p.group_id = g.id
		WHERE g.id IS NULL
	`).Scan(&orphaned)
	if err != nil {
		return fmt.Errorf("failed to check orphaned practices: %w", err)
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d practices referencing non-existent groups", orphaned)
	}

	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM practice_overrides o
		LEFT JOIN practices p ON o.practice_id = p.id
		WHERE p.id IS NULL
	`).Scan(&orphaned)
	if err != nil {
		return fmt.Errorf("failed to check orphaned overrides: %w", err)
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d overrides referencing non-existent practices", orphaned)
	}

	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	checks := []struct {
		table, column string
	}{
		{"practices", "start_date"},
		{"practices", "end_date"},
		{"practice_overrides", "start_date"},
		{"practice_overrides", "end_date"},
		{"progress_entries", "day"},
	}
	for _, c := range checks {
		var invalid int
		query := fmt.Sprintf(`
			SELECT COUNT(*) FROM %s
			WHERE %s NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'`,
			c.table, c.column)
		if err := db.QueryRow(query).Scan(&invalid); err != nil {
			return fmt.Errorf("failed to check %s.%s: %w", c.table, c.column, err)
		}
		if invalid > 0 {
			return fmt.Errorf("found %d rows in %s with invalid %s format", invalid, c.table, c.column)
		}
	}

	return nil
}

func checkProgressDuplicates(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var duplicates int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM (
			SELECT practice_id, user_id, day, COUNT(*) as cnt
			FROM progress_entries
			GROUP BY practice_id, user_id, day
			HAVING cnt > 1
		)
	`).Scan(&duplicates)
	if err != nil {
		return fmt.Errorf("failed to check duplicate progress entries: %w", err)
	}
	if duplicates > 0 {
		return fmt.Errorf("found %d user+practice+day combinations with duplicate entries", duplicates)
	}

	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
