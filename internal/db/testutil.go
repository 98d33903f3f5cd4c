package db

import (
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// TestDB creates an in-memory SQLite database for testing
// Auto-migrates all models and registers t.Cleanup() for automatic cleanup
func TestDB(t testing.TB) *gorm.DB {
	t.Helper()

	config := SQLiteConfig{
		Path:     ":memory:",
		LogLevel: logger.Silent, // Keep tests quiet by default
	}

	db, err := OpenSQLite(config)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to auto-migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			t.Logf("failed to get sql.DB for cleanup: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return db
}

// SeedLogs inserts one cycle log per date for the given owner and
// returns the created records in insertion order.
func SeedLogs(t testing.TB, db *gorm.DB, ownerKey string, dates ...string) []*CycleLog {
	t.Helper()

	logs := make([]*CycleLog, 0, len(dates))
	for _, d := range dates {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			t.Fatalf("bad seed date %q: %v", d, err)
		}
		log := &CycleLog{OwnerKey: ownerKey, StartDate: cycle.DateOnly(day)}
		if err := db.Create(log).Error; err != nil {
			t.Fatalf("failed to seed cycle log %s: %v", d, err)
		}
		logs = append(logs, log)
	}
	return logs
}
