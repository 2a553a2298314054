package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokebattle/internal/logging"
)

// requestLogger writes one JSON log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Info("request", logging.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}
