package middleware

import (
	"context"
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/auth"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthEmailKey is the gin context key holding the authenticated admin email.
const AuthEmailKey = "auth_email"

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, token string) (auth.Verification, error)
}

// RequireAuth returns a Gin middleware that only lets requests carrying a
// live "Bearer <token>" through.
func RequireAuth(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, ok := auth.BearerToken(header)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		v, err := ver.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Errorf("token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !v.Valid {
			msg := "invalid token"
			if v.Expired {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(AuthEmailKey, v.Email)
		c.Next()
	}
}

// rateLimitKey prefers the authenticated admin over the client IP.
func rateLimitKey(c *gin.Context) string {
	if email := c.GetString(AuthEmailKey); email != "" {
		return "admin:" + email
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}
