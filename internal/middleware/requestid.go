package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillmatch/backend/pkg/logger"
)

// RequestID assigns each request a UUID, honoring an inbound X-Request-ID
// so IDs survive proxies. The ID is echoed in the response header and
// picked up by the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(logger.ContextRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
