package backups

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/praxishq/praxis-cli/internal/backup"
	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/constants"
	"github.com/praxishq/praxis-cli/internal/storage"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		return fmt.Errorf("backups only apply to local SQLite storage, hosted databases are backed up server-side")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("%s Backup created: %s\n", cli.SuccessStyle.Render("✓"), filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		return fmt.Errorf("backups only apply to local SQLite storage, hosted databases are backed up server-side")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.BackupDir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if storage.IsPostgresConnString(ctx.Store.GetConfigPath()) {
		return fmt.Errorf("backups only apply to local SQLite storage, hosted databases are backed up server-side")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := resolveBackupPath(mgr, c.BackupFile)
	if err != nil {
		return err
	}

	fmt.Println(cli.WarnStyle.Render("This will replace your current database with the backup."))
	fmt.Println("Stop any running 'praxis reminders watch' processes before restoring.")
	fmt.Println("A backup of your current database will be created first.")
	fmt.Printf("\nRestore from: %s\n", backupPath)

	confirmed, err := cli.Confirm("Continue with restore?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Restore cancelled.")
		return nil
	}

	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render("✓") + " Database restored successfully!")
	return nil
}

func resolveBackupPath(mgr *backup.Manager, ref string) (string, error) {
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", ref)
		}
		return ref, nil
	}

	// Relative references are tried in the current directory first, then in
	// the backup directory.
	if _, err := os.Stat(ref); err == nil {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return abs, nil
	}

	inBackupDir := filepath.Join(mgr.BackupDir(), ref)
	if _, err := os.Stat(inBackupDir); err == nil {
		return inBackupDir, nil
	}

	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.BackupDir())
}
