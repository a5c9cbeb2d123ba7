package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func createTestDB(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "praxis.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE marker (id INTEGER PRIMARY KEY, label TEXT)"); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO marker (label) VALUES ('original')"); err != nil {
		t.Fatalf("failed to insert test row: %v", err)
	}

	return dbPath
}

func TestCreateAndListBackups(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("ListBackups() returned %d backups, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path %s, want %s", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("listed backup has zero size")
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() succeeded without a database")
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "praxis.db"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() returned %d backups, want 0", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}

	// Modify the live database, then restore the snapshot.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("UPDATE marker SET label = 'changed'"); err != nil {
		t.Fatalf("failed to update test row: %v", err)
	}
	db.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() returned unexpected error: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var label string
	if err := db.QueryRow("SELECT label FROM marker").Scan(&label); err != nil {
		t.Fatalf("failed to read restored row: %v", err)
	}
	if label != "original" {
		t.Errorf("restored label = %q, want original", label)
	}
}

func TestRestoreBackupInvalidFile(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("RestoreBackup() accepted a corrupt backup")
	}
}
