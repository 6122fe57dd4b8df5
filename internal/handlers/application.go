package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillmatch/backend/internal/middleware"
	"github.com/skillmatch/backend/internal/services"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: services.NewApplicationService(db),
	}
}

// List returns applications visible to the principal
// GET /api/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	var req services.ApplicationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	apps, err := h.applicationService.List(middleware.GetPrincipal(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, apps)
}

// Create submits an application (freelancer self or ADMIN)
// POST /api/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req services.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.applicationService.Create(middleware.GetPrincipal(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, app, "application created successfully")
}

type updateApplicationRequest struct {
	Status string `json:"status"`
}

// Update sets an application's status (project creator or ADMIN)
// PUT /api/applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.applicationService.SetStatus(middleware.GetPrincipal(c), uint(id), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, app, "status updated successfully")
}

// Delete withdraws an application (owning freelancer or ADMIN)
// DELETE /api/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	if err := h.applicationService.Delete(middleware.GetPrincipal(c), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, nil, "application deleted successfully")
}
