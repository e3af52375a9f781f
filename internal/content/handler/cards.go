package handler

import (
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listCards(c *gin.Context) {
	cards, err := h.svc.ListFeaturedCards(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err, "failed to fetch featured cards")
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *Handler) getCard(c *gin.Context) {
	card, err := h.svc.GetFeaturedCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, err, "failed to fetch featured card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) createCard(c *gin.Context) {
	var in service.FeaturedCardInput
	if !bind(c, &in) {
		return
	}
	card, err := h.svc.CreateFeaturedCard(c.Request.Context(), in)
	if err != nil {
		apperr.Respond(c, err, "failed to create featured card")
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *Handler) updateCard(c *gin.Context) {
	var p service.FeaturedCardPatch
	if !bind(c, &p) {
		return
	}
	card, err := h.svc.UpdateFeaturedCard(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		apperr.Respond(c, err, "failed to update featured card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) deleteCard(c *gin.Context) {
	if err := h.svc.DeleteFeaturedCard(c.Request.Context(), c.Param("id")); err != nil {
		apperr.Respond(c, err, "failed to delete featured card")
		return
	}
	deleted(c, "featured card deleted")
}
