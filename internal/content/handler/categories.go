package handler

import (
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) getCategory(c *gin.Context) {
	cat, err := h.svc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, err, "failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) getCategoryBySlug(c *gin.Context) {
	cat, err := h.svc.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apperr.Respond(c, err, "failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) createCategory(c *gin.Context) {
	var in service.CategoryInput
	if !bind(c, &in) {
		return
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), in)
	if err != nil {
		apperr.Respond(c, err, "failed to create category")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *Handler) updateCategory(c *gin.Context) {
	var p service.CategoryPatch
	if !bind(c, &p) {
		return
	}
	cat, err := h.svc.UpdateCategory(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		apperr.Respond(c, err, "failed to update category")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		apperr.Respond(c, err, "failed to delete category")
		return
	}
	deleted(c, "category deleted")
}
