package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/internal/policy"
	"github.com/skillmatch/backend/internal/utils"
	"github.com/skillmatch/backend/pkg/response"
)

const (
	ContextUserID = "user_id"
	ContextName   = "name"
	ContextRole   = "role"
)

// AuthRequired verifies the bearer token and stores the principal in the
// request context. An expired token gets a distinct reason code so clients
// can prompt for re-login instead of treating it as a bad credential.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "token_missing", "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "token_missing", "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				response.Unauthorized(c, "token_expired", "token expired, please log in again")
			} else {
				response.Unauthorized(c, "token_invalid", "invalid token")
			}
			c.Abort()
			return
		}

		role, err := models.ParseRole(claims.Role)
		if err != nil {
			response.Unauthorized(c, "token_invalid", "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextName, claims.Name)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// AdminRequired rejects requests whose principal is not an ADMIN. Must run
// after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists || role != models.RoleAdmin {
			response.Forbidden(c, string(policy.ReasonAdminOnly), "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal stored by AuthRequired.
func GetPrincipal(c *gin.Context) policy.Principal {
	return policy.Principal{
		ID:   GetUserID(c),
		Role: GetRole(c),
	}
}

// GetUserID gets the current user ID from context.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextUserID); exists {
		return id.(uint)
	}
	return 0
}

// GetName gets the current user's name from context.
func GetName(c *gin.Context) string {
	if name, exists := c.Get(ContextName); exists {
		return name.(string)
	}
	return ""
}

// GetRole gets the current user role from context.
func GetRole(c *gin.Context) models.Role {
	if role, exists := c.Get(ContextRole); exists {
		return role.(models.Role)
	}
	return ""
}
