package handler

import (
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getSettings(c *gin.Context) {
	s, err := h.svc.GetSettings(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) updateSettings(c *gin.Context) {
	var p service.SettingsPatch
	if !bind(c, &p) {
		return
	}
	s, err := h.svc.UpdateSettings(c.Request.Context(), p)
	if err != nil {
		apperr.Respond(c, err, "failed to update settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) export(c *gin.Context) {
	doc, err := h.svc.Export(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to export content")
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) backup(c *gin.Context) {
	if h.backups == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "object storage not configured"})
		return
	}
	doc, err := h.svc.Export(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to export content")
		return
	}
	key, url, err := h.backups.Snapshot(c.Request.Context(), doc)
	if err != nil {
		apperr.Respond(c, err, "failed to store backup")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key, "url": url})
}
