package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillmatch/backend/internal/middleware"
	"github.com/skillmatch/backend/internal/services"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
	}
}

// List returns projects with optional filters and ordering
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	projects, err := h.projectService.List(middleware.GetPrincipal(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, projects)
}

// GetByID returns a project by ID
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.projectService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// Create adds a project (CLIENT only)
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(middleware.GetPrincipal(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, project, "project created successfully")
}

// Update modifies a project (creator only)
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(middleware.GetPrincipal(c), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, project, "project updated successfully")
}

// Delete removes a project (creator only)
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.projectService.Delete(middleware.GetPrincipal(c), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, nil, "project deleted successfully")
}
