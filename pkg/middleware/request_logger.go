package middleware

import (
	"strconv"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request and counts it in metrics.HTTPRequests.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, strconv.Itoa(status)).Inc()
		entry := logger.WithFields(logger.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Debug("request")
		}
	}
}
