package handlers

import (
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/auth"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin credential pair.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	Email string `json:"email"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	authSvc *auth.Service
}

func NewAuthHandler(a *auth.Service) *AuthHandler {
	return &AuthHandler{authSvc: a}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/logout", h.Logout)
	a.GET("/verify", h.Verify)
}

// Login checks the admin credentials and issues a bearer token valid for 24h.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	res, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperr.Respond(c, err, "login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
		"user":      userView{Email: res.Email},
	})
}

// Logout forgets the bearer token, if any. It succeeds for unknown tokens too.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := auth.BearerToken(c.GetHeader("Authorization"))
	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		logger.Errorf("logout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

// Verify reports whether the bearer token is still valid.
func (h *AuthHandler) Verify(c *gin.Context) {
	token, ok := auth.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "token not provided"})
		return
	}
	v, err := h.authSvc.Verify(c.Request.Context(), token)
	if err != nil {
		logger.Errorf("verify token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"valid": false, "error": "failed to verify token"})
		return
	}
	switch {
	case v.Expired:
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "token expired"})
	case !v.Valid:
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "invalid token"})
	default:
		c.JSON(http.StatusOK, gin.H{"valid": true, "user": userView{Email: v.Email}})
	}
}
