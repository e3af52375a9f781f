package middleware

import (
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a generic 500 JSON response. The
// panic value is logged, never returned to the client.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logger.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
