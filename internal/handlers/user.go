package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillmatch/backend/internal/middleware"
	"github.com/skillmatch/backend/internal/services"
	"github.com/skillmatch/backend/pkg/response"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(db),
	}
}

// List returns all users (ADMIN only)
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(middleware.GetPrincipal(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}

// Create adds a user account (ADMIN only)
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(middleware.GetPrincipal(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, user, "user created successfully")
}

// Update modifies a user (owner or ADMIN)
// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(middleware.GetPrincipal(c), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, user, "user updated successfully")
}

// Delete removes a user and all dependent records (owner or ADMIN)
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.userService.Delete(middleware.GetPrincipal(c), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessMessage(c, nil, "user and related records deleted successfully")
}
