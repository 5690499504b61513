package handler

import (
	offerapp "github.com/dachpro/backoffice/internal/application/offer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OfferHandler handles offer document generation
type OfferHandler struct {
	BaseHandler
	offerService *offerapp.OfferService
}

// NewOfferHandler creates a new OfferHandler
func NewOfferHandler(offerService *offerapp.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// Build assembles the offer document of a project from its resolved state
func (h *OfferHandler) Build(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid project ID")
		return
	}

	document, err := h.offerService.BuildOffer(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, document)
}
