package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestStore creates a small SQLite storage file in a temp directory.
func setupTestStore(t *testing.T) string {
	t.Helper()

	storePath := filepath.Join(t.TempDir(), "habitflow.db")
	db, err := sql.Open("sqlite", storePath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE habits (id TEXT PRIMARY KEY, name TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits (id, name) VALUES ('h1', 'Read')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return storePath
}

func setupTestJSONStore(t *testing.T) string {
	t.Helper()

	storePath := filepath.Join(t.TempDir(), "habitflow.json")
	data := `{"version":1,"habits":[],"completions":{}}`
	if err := os.WriteFile(storePath, []byte(data), 0600); err != nil {
		t.Fatalf("failed to write test store: %v", err)
	}
	return storePath
}

func TestCreateBackup(t *testing.T) {
	storePath := setupTestStore(t)
	m := NewManager(storePath)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file was not created: %v", err)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, ".db") {
		t.Errorf("unexpected backup name: %s", name)
	}

	// The backup must be a readable database containing the data
	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to query backup: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 habit in backup, got %d", count)
	}
}

func TestCreateBackup_JSONStore(t *testing.T) {
	storePath := setupTestJSONStore(t)
	m := NewManager(storePath)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("expected .json backup, got %s", backupPath)
	}

	src, _ := os.ReadFile(storePath)
	dst, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(src) != string(dst) {
		t.Error("backup content differs from store")
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected error for missing storage file")
	}
}

func TestListBackups(t *testing.T) {
	storePath := setupTestStore(t)
	m := NewManager(storePath)

	// No backup directory yet
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if _, err := m.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestListBackups_IgnoresForeignFiles(t *testing.T) {
	storePath := setupTestStore(t)
	m := NewManager(storePath)

	if _, err := m.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Files without the expected prefix or suffix are skipped
	for _, name := range []string{"notes.txt", "habitflow-garbage.db", BackupFilePrefix + "20251231-0800.json"} {
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write foreign file: %v", err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestBackupRotation(t *testing.T) {
	storePath := setupTestStore(t)
	m := NewManager(storePath)

	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}

	// Seed more than MaxBackups synthetic backups with distinct timestamps
	for i := 0; i < MaxBackups+5; i++ {
		name := BackupFilePrefix + "202512" + twoDigits(i+1) + "-0800.db"
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("backup"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	if err := m.rotateBackups(); err != nil {
		t.Fatalf("rotateBackups failed: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}

	// The newest timestamps survive
	for _, b := range backups {
		if b.Timestamp.Day() <= 5 {
			t.Errorf("expected oldest backups removed, found %s", b.Path)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	storePath := setupTestStore(t)
	m := NewManager(storePath)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live store after the backup
	db, err := sql.Open("sqlite", storePath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits (id, name) VALUES ('h2', 'Run')`); err != nil {
		t.Fatalf("failed to mutate store: %v", err)
	}
	db.Close()

	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	db, err = sql.Open("sqlite", storePath)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to query restored store: %v", err)
	}
	if count != 1 {
		t.Errorf("expected restored store with 1 habit, got %d", count)
	}
}

func TestRestoreBackup_MissingFile(t *testing.T) {
	m := NewManager(setupTestStore(t))
	if err := m.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error restoring missing backup")
	}
}

func TestRestoreBackup_CorruptedFile(t *testing.T) {
	storePath := setupTestStore(t)
	m := NewManager(storePath)

	corrupt := filepath.Join(filepath.Dir(storePath), BackupFilePrefix+"20251231-0800.db")
	if err := os.WriteFile(corrupt, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if err := m.RestoreBackup(corrupt); err == nil {
		t.Error("expected error restoring corrupted backup")
	}
}

func TestTrimCollisionCounter(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"20251231-0800", "20251231-0800"},
		{"20251231-080015", "20251231-080015"},
		{"20251231-080015-1", "20251231-080015"},
		{"20251231-080015-12", "20251231-080015"},
		{"20251231-0800-abc", "20251231-0800-abc"},
	}
	for _, tt := range tests {
		if got := trimCollisionCounter(tt.in); got != tt.want {
			t.Errorf("trimCollisionCounter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
