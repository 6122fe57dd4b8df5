package services

import (
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/pkg/logger"
	"gorm.io/gorm"
)

var auditDB *gorm.DB

// InitSystemLogger sets the database used by the package-level audit
// logging functions.
func InitSystemLogger(db *gorm.DB) {
	auditDB = db
}

func LogInfo(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeLog("info", module, action, message, userID, ip, userAgent, extra)
}

func LogWarning(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeLog("warning", module, action, message, userID, ip, userAgent, extra)
}

func writeLog(level, module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	if auditDB == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.SystemLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	auditDB.Create(entry)
}

type SystemLogService struct {
	db *gorm.DB
}

func NewSystemLogService(db *gorm.DB) *SystemLogService {
	return &SystemLogService{db: db}
}

type SystemLogListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Level    string `form:"level"`
	Module   string `form:"module"`
}

type SystemLogListResponse struct {
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Items    []models.SystemLog `json:"items"`
}

func (s *SystemLogService) List(req *SystemLogListRequest) (*SystemLogListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 20
	}

	query := s.db.Model(&models.SystemLog{})
	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Module != "" {
		query = query.Where("module = ?", req.Module)
	}

	var total int64
	query.Count(&total)

	var logs []models.SystemLog
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&logs).Error; err != nil {
		return nil, err
	}

	return &SystemLogListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    logs,
	}, nil
}

// Cleanup deletes audit rows older than retentionDays.
func (s *SystemLogService) Cleanup(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

const logRetentionDays = 30

var cleanupCron *cron.Cron

// StartLogCleanupScheduler runs the audit-log retention cleanup nightly.
func StartLogCleanupScheduler(db *gorm.DB) {
	service := NewSystemLogService(db)

	cleanupCron = cron.New()
	cleanupCron.AddFunc("0 3 * * *", func() {
		removed, err := service.Cleanup(logRetentionDays)
		if err != nil {
			logger.Error().Err(err).Msg("audit log cleanup failed")
			return
		}
		if removed > 0 {
			logger.Info().Int64("removed", removed).Msg("audit log cleanup done")
		}
	})
	cleanupCron.Start()
}

// StopLogCleanupScheduler stops the cleanup scheduler.
func StopLogCleanupScheduler() {
	if cleanupCron != nil {
		cleanupCron.Stop()
	}
}
