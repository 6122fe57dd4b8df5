package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/skillmatch/backend/internal/services"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

type SystemLogHandler struct {
	logService *services.SystemLogService
}

func NewSystemLogHandler(db *gorm.DB) *SystemLogHandler {
	return &SystemLogHandler{
		logService: services.NewSystemLogService(db),
	}
}

// List returns paginated audit log entries (ADMIN only, via route group)
// GET /api/system-logs
func (h *SystemLogHandler) List(c *gin.Context) {
	var req services.SystemLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.logService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}
