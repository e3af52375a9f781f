package handler

import (
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listFAQs(c *gin.Context) {
	faqs, err := h.svc.ListFAQs(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to fetch FAQs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

func (h *Handler) groupedFAQs(c *gin.Context) {
	grouped, err := h.svc.GroupedFAQs(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to fetch grouped FAQs")
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *Handler) listFAQsByCategory(c *gin.Context) {
	faqs, err := h.svc.ListFAQsByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		apperr.Respond(c, err, "failed to fetch category FAQs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

func (h *Handler) getFAQ(c *gin.Context) {
	faq, err := h.svc.GetFAQ(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, err, "failed to fetch FAQ")
		return
	}
	c.JSON(http.StatusOK, faq)
}

func (h *Handler) createFAQ(c *gin.Context) {
	var in service.FAQInput
	if !bind(c, &in) {
		return
	}
	faq, err := h.svc.CreateFAQ(c.Request.Context(), in)
	if err != nil {
		apperr.Respond(c, err, "failed to create FAQ")
		return
	}
	c.JSON(http.StatusCreated, faq)
}

func (h *Handler) updateFAQ(c *gin.Context) {
	var p service.FAQPatch
	if !bind(c, &p) {
		return
	}
	faq, err := h.svc.UpdateFAQ(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		apperr.Respond(c, err, "failed to update FAQ")
		return
	}
	c.JSON(http.StatusOK, faq)
}

func (h *Handler) deleteFAQ(c *gin.Context) {
	if err := h.svc.DeleteFAQ(c.Request.Context(), c.Param("id")); err != nil {
		apperr.Respond(c, err, "failed to delete FAQ")
		return
	}
	deleted(c, "FAQ deleted")
}

func (h *Handler) reorderFAQs(c *gin.Context) {
	var req struct {
		Items *[]service.ReorderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items must be an array"})
		return
	}
	if err := h.svc.ReorderFAQs(c.Request.Context(), *req.Items); err != nil {
		apperr.Respond(c, err, "failed to reorder FAQs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQs reordered"})
}

func (h *Handler) searchFAQs(c *gin.Context) {
	res, err := h.svc.SearchFAQs(c.Request.Context(), c.Query("q"))
	if err != nil {
		apperr.Respond(c, err, "search failed")
		return
	}
	c.JSON(http.StatusOK, res)
}
