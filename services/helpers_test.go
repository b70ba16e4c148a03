package services

import (
	"GrowthGo/config"
	"GrowthGo/models"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conf := config.Config{
		Environment: "test",
		DBDriver:    "sqlite",
		DBPath:      filepath.Join(t.TempDir(), "growth.db"),
	}

	db, err := config.OpenDB(conf)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.MigrateDB(db); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	t.Cleanup(func() {
		_ = config.CloseDB(db)
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	user := models.User{
		Username:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user.ID
}

// insertAt 直接写入带指定创建时间的记录
func insertAt(t *testing.T, db *gorm.DB, row interface{}) {
	t.Helper()
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("insert %T: %v", row, err)
	}
}

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

var ctx = context.Background()
