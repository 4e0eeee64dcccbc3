package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware tags every request with a request ID and logs the outcome
// once the handler chain finishes. The full ID is echoed back in the
// X-Request-ID header; log lines carry its first eight characters.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()

		c.Next()

		fullPath := c.Request.URL.Path
		if qs := c.Request.URL.RawQuery; qs != "" {
			fullPath += "?" + qs
		}

		log.Printf("[%s] %s %s -> %d in %v from %s",
			requestID[:8],
			c.Request.Method,
			fullPath,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)

		for _, e := range c.Errors {
			log.Printf("[%s] error: %v", requestID[:8], e.Err)
		}
	}
}
