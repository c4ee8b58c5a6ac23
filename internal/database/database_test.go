package database

import (
	"path/filepath"
	"testing"

	"github.com/pathakanu/myStreak/internal/model"
)

func TestNewUsesSQLiteWhenNoURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streak.db")

	db, err := New("", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if name := db.Dialector.Name(); name != "sqlite" {
		t.Fatalf("dialector = %q, want sqlite", name)
	}
	if !db.Migrator().HasTable(&model.Entry{}) {
		t.Fatalf("expected key-value table to be migrated")
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
