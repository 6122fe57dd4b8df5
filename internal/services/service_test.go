package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/internal/policy"
	"github.com/skillmatch/backend/internal/utils"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	utils.SetJWTSecret("test-secret-key-for-testing")
}

// setupTestDB opens a throwaway sqlite database with the production schema
// and error translation enabled.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.Application{},
		&models.SystemLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: hash,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return user
}

func seedProject(t *testing.T, db *gorm.DB, creatorID uint, title string, skills ...string) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:       title,
		Description: "description of " + title,
		Budget:      1000,
		Deadline:    time.Now().AddDate(0, 1, 0),
		CreatorID:   creatorID,
	}
	for _, s := range skills {
		project.Skills = append(project.Skills, models.Skill{Name: s})
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to seed project %s: %v", title, err)
	}
	return project
}

func principal(u *models.User) policy.Principal {
	return policy.Principal{ID: u.ID, Role: u.Role}
}

// assertAppError fails unless err is an *AppError with the given reason.
func assertAppError(t *testing.T, err error, status int, reason string) {
	t.Helper()

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, expected an AppError with reason %q", err, reason)
	}
	if appErr.HTTPStatus != status {
		t.Errorf("HTTPStatus = %d, expected %d", appErr.HTTPStatus, status)
	}
	if appErr.Reason != reason {
		t.Errorf("Reason = %q, expected %q", appErr.Reason, reason)
	}
}
