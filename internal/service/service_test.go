package service

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"studydesk/internal/repository"
)

// newTestDB opens a throwaway SQLite database with all migrations run.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}
