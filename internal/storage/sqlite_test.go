package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesSchema(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Open() did not create database file")
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Open() did not create database file in nested directory")
	}
}

func TestOpen_IdempotentKeepsData(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := db.CreateApplication("Acme", "Analyst", "", "", ""); err != nil {
		t.Fatalf("CreateApplication() error = %v", err)
	}
	db.Close()

	// Reopening must not touch existing data
	db2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() second call error = %v", err)
	}
	defer db2.Close()

	count, err := db2.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() after reopen = %d, want 1", count)
	}
}

func TestOpen_ParentIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	_, err := Open(filepath.Join(blocker, "test.db"))
	if err == nil {
		t.Fatal("Open() expected error when parent is a file")
	}
	if !IsStorage(err) {
		t.Errorf("Open() error = %v, want ErrStorage", err)
	}
}
