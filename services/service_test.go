// file: services/service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/hemanthrajvardhan/ctf/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 为每个测试建一个独立的内存 SQLite 库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Hint{},
		&models.Category{},
		&models.Submission{},
		&models.Solve{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := models.User{
		Email:    email,
		Name:     email,
		Password: "password123",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestChallenge(t *testing.T, db *gorm.DB, slug string, points uint, flag string, visible bool) *models.Challenge {
	t.Helper()
	challenge := models.Challenge{
		Title:     slug,
		Slug:      slug,
		Category:  "crypto",
		Points:    points,
		IsVisible: visible,
	}
	if err := challenge.SetFlag(flag); err != nil {
		t.Fatalf("failed to hash flag: %v", err)
	}
	if err := db.Create(&challenge).Error; err != nil {
		t.Fatalf("failed to create test challenge: %v", err)
	}
	return &challenge
}
