package handler

import (
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listSections(c *gin.Context) {
	sections, err := h.svc.ListFooterSections(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to fetch footer links")
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *Handler) getSection(c *gin.Context) {
	sec, err := h.svc.GetFooterSection(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, err, "failed to fetch footer section")
		return
	}
	c.JSON(http.StatusOK, sec)
}

func (h *Handler) createSection(c *gin.Context) {
	var in service.FooterSectionInput
	if !bind(c, &in) {
		return
	}
	sec, err := h.svc.CreateFooterSection(c.Request.Context(), in)
	if err != nil {
		apperr.Respond(c, err, "failed to create footer section")
		return
	}
	c.JSON(http.StatusCreated, sec)
}

func (h *Handler) updateSection(c *gin.Context) {
	var p service.FooterSectionPatch
	if !bind(c, &p) {
		return
	}
	sec, err := h.svc.UpdateFooterSection(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		apperr.Respond(c, err, "failed to update footer section")
		return
	}
	c.JSON(http.StatusOK, sec)
}

func (h *Handler) deleteSection(c *gin.Context) {
	if err := h.svc.DeleteFooterSection(c.Request.Context(), c.Param("id")); err != nil {
		apperr.Respond(c, err, "failed to delete footer section")
		return
	}
	deleted(c, "footer section deleted")
}

func (h *Handler) createItem(c *gin.Context) {
	var in service.FooterItemInput
	if !bind(c, &in) {
		return
	}
	item, err := h.svc.CreateFooterItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		apperr.Respond(c, err, "failed to create footer link")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) updateItem(c *gin.Context) {
	var p service.FooterItemPatch
	if !bind(c, &p) {
		return
	}
	item, err := h.svc.UpdateFooterItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), p)
	if err != nil {
		apperr.Respond(c, err, "failed to update footer link")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteItem(c *gin.Context) {
	if err := h.svc.DeleteFooterItem(c.Request.Context(), c.Param("id"), c.Param("itemId")); err != nil {
		apperr.Respond(c, err, "failed to delete footer link")
		return
	}
	deleted(c, "footer link deleted")
}
