// Package testutil holds helpers shared by store-backed tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/projectboard/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory sqlite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(models.SQLiteDialector(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// One connection keeps the shared in-memory database alive and avoids
	// table lock contention between concurrent readers.
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// MustCreate inserts every value or fails the test.
func MustCreate(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("create %T: %v", v, err)
		}
	}
}

// FailQueriesOn makes every SELECT against table fail with err.
func FailQueriesOn(t *testing.T, db *gorm.DB, table string, err error) {
	t.Helper()
	name := "testutil:fail_" + table
	cbErr := db.Callback().Query().Before("gorm:query").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	})
	if cbErr != nil {
		t.Fatalf("register callback: %v", cbErr)
	}
}

func UintPtr(v uint) *uint { return &v }

func StrPtr(v string) *string { return &v }
