package services

import (
	"testing"
	"time"

	"github.com/skillmatch/backend/internal/models"
)

func TestSystemLog_WriteAndList(t *testing.T) {
	db := setupTestDB(t)
	InitSystemLogger(db)
	defer InitSystemLogger(nil)

	userID := uint(7)
	LogInfo("auth", "login", "user logged in", &userID, "127.0.0.1", "test-agent", nil)
	LogWarning("project", "delete", "project removed", nil, "127.0.0.1", "test-agent",
		map[string]uint{"project_id": 3})

	s := NewSystemLogService(db)
	resp, err := s.List(&SystemLogListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("Total = %d, expected 2", resp.Total)
	}
	if resp.Page != 1 || resp.PageSize != 20 {
		t.Errorf("defaults not applied: page=%d page_size=%d", resp.Page, resp.PageSize)
	}

	byLevel, err := s.List(&SystemLogListRequest{Level: "warning"})
	if err != nil {
		t.Fatalf("List(level) error = %v", err)
	}
	if byLevel.Total != 1 {
		t.Errorf("level filter Total = %d, expected 1", byLevel.Total)
	}
	if byLevel.Items[0].Module != "project" {
		t.Errorf("Module = %q, expected project", byLevel.Items[0].Module)
	}
	if byLevel.Items[0].Extra == "" {
		t.Error("extra payload should be serialized")
	}
}

func TestSystemLog_Cleanup(t *testing.T) {
	db := setupTestDB(t)
	s := NewSystemLogService(db)

	old := models.SystemLog{Level: "info", Module: "auth", Action: "login",
		Message: "stale", CreatedAt: time.Now().AddDate(0, 0, -45)}
	fresh := models.SystemLog{Level: "info", Module: "auth", Action: "login",
		Message: "recent", CreatedAt: time.Now()}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}
	if err := db.Create(&fresh).Error; err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	removed, err := s.Cleanup(30)
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, expected 1", removed)
	}

	var count int64
	db.Model(&models.SystemLog{}).Count(&count)
	if count != 1 {
		t.Errorf("remaining rows = %d, expected 1", count)
	}
}

func TestSystemLog_WriteWithoutInit(t *testing.T) {
	InitSystemLogger(nil)
	// Must not panic when no database is configured.
	LogInfo("auth", "login", "noop", nil, "", "", nil)
}
