// Package handler exposes the content service over gin.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/service"
	"github.com/gin-gonic/gin"
)

// Snapshotter uploads a copy of the content document somewhere durable and
// returns its object key and a time-limited download URL.
type Snapshotter interface {
	Snapshot(ctx context.Context, doc *content.Document) (key, url string, err error)
}

type Handler struct {
	svc     *service.Service
	backups Snapshotter
}

// New returns a Handler. backups may be nil, in which case the backup
// endpoint answers 503.
func New(svc *service.Service, backups Snapshotter) *Handler {
	return &Handler{svc: svc, backups: backups}
}

// Register mounts every content route on rg. Mutating routes and the admin
// group are wrapped with requireAuth.
func (h *Handler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	cats := rg.Group("/categories")
	cats.GET("", h.listCategories)
	cats.GET("/slug/:slug", h.getCategoryBySlug)
	cats.GET("/:id", h.getCategory)
	cats.POST("", requireAuth, h.createCategory)
	cats.PUT("/:id", requireAuth, h.updateCategory)
	cats.DELETE("/:id", requireAuth, h.deleteCategory)

	faqs := rg.Group("/faqs")
	faqs.GET("", h.listFAQs)
	faqs.GET("/grouped", h.groupedFAQs)
	faqs.GET("/category/:categoryId", h.listFAQsByCategory)
	faqs.GET("/:id", h.getFAQ)
	faqs.POST("", requireAuth, h.createFAQ)
	faqs.PUT("/reorder", requireAuth, h.reorderFAQs)
	faqs.PUT("/:id", requireAuth, h.updateFAQ)
	faqs.DELETE("/:id", requireAuth, h.deleteFAQ)
	rg.GET("/search", h.searchFAQs)

	cards := rg.Group("/featured-cards")
	cards.GET("", h.listCards)
	cards.GET("/:id", h.getCard)
	cards.POST("", requireAuth, h.createCard)
	cards.PUT("/:id", requireAuth, h.updateCard)
	cards.DELETE("/:id", requireAuth, h.deleteCard)

	footer := rg.Group("/footer-links")
	footer.GET("", h.listSections)
	footer.GET("/:id", h.getSection)
	footer.POST("", requireAuth, h.createSection)
	footer.PUT("/:id", requireAuth, h.updateSection)
	footer.DELETE("/:id", requireAuth, h.deleteSection)
	footer.POST("/:id/items", requireAuth, h.createItem)
	footer.PUT("/:id/items/:itemId", requireAuth, h.updateItem)
	footer.DELETE("/:id/items/:itemId", requireAuth, h.deleteItem)

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", requireAuth, h.updateSettings)

	admin := rg.Group("/admin", requireAuth)
	admin.GET("/export", h.export)
	admin.POST("/backup", h.backup)
}

// bind decodes the JSON body into v. An empty body leaves v zeroed so the
// service reports the missing fields itself.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return false
	}
	return true
}

func deleted(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
