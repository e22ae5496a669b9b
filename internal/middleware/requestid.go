package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Joasro/Industrias/internal/logger"
)

// RequestID tags every request with an id, echoes it back in the
// X-Request-Id header and writes one access line per request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)

		start := time.Now()
		c.Next()

		logger.Log.WithFields(map[string]any{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start).String(),
		}).Debug("request")
	}
}
