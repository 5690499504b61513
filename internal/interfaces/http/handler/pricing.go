package handler

import (
	"strings"

	pricingapp "github.com/dachpro/backoffice/internal/application/pricing"
	"github.com/dachpro/backoffice/internal/domain/catalog"
	"github.com/dachpro/backoffice/internal/domain/pricing"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingHandler handles draft edits, pricing resolution and project commits
type PricingHandler struct {
	BaseHandler
	draftService       *pricingapp.DraftService
	pricingService     *pricingapp.PricingService
	groupOptionService *pricingapp.GroupOptionService
	commitService      *pricingapp.CommitService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(
	draftService *pricingapp.DraftService,
	pricingService *pricingapp.PricingService,
	groupOptionService *pricingapp.GroupOptionService,
	commitService *pricingapp.CommitService,
) *PricingHandler {
	return &PricingHandler{
		draftService:       draftService,
		pricingService:     pricingService,
		groupOptionService: groupOptionService,
		commitService:      commitService,
	}
}

// UpsertDraftRequest is the body of a draft edit. One of the patch fields
// must be present; nil fields leave the stored row untouched.
type UpsertDraftRequest struct {
	ProductID    *string `json:"product_id"`
	Category     string  `json:"category" binding:"required"`
	Manufacturer string  `json:"manufacturer"`
	GroupName    string  `json:"group_name"`

	RetailPrice     *decimal.Decimal `json:"retail_price"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	SellingPrice    *decimal.Decimal `json:"selling_price"`
	Quantity        *decimal.Decimal `json:"quantity"`
	MarginPercent   *decimal.Decimal `json:"margin_percent"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	Source          *string          `json:"source"`
	GroupOption     *string          `json:"group_option"`
}

// SetGroupOptionRequest selects the inclusion state of one product group
type SetGroupOptionRequest struct {
	Category     string `json:"category" binding:"required"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	GroupName    string `json:"group_name" binding:"required"`
	Option       string `json:"option" binding:"required"`
}

// ApplyMeasurementsRequest carries the measurement form values used to
// project product quantities
type ApplyMeasurementsRequest struct {
	Measurements map[string]decimal.Decimal `json:"measurements" binding:"required"`
}

func (h *PricingHandler) projectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid project ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PricingHandler) category(c *gin.Context) (catalog.Category, bool) {
	category := catalog.Category(strings.ToUpper(c.Param("category")))
	if !category.IsValid() {
		h.BadRequest(c, "unknown category: "+c.Param("category"))
		return "", false
	}
	return category, true
}

// optionalCategory reads the category query parameter when present
func (h *PricingHandler) optionalCategory(c *gin.Context) (*catalog.Category, bool) {
	raw := c.Query("category")
	if raw == "" {
		return nil, true
	}
	category := catalog.Category(strings.ToUpper(raw))
	if !category.IsValid() {
		h.BadRequest(c, "unknown category: "+raw)
		return nil, false
	}
	return &category, true
}

// UpsertDraft records or merges one draft edit of a project
func (h *PricingHandler) UpsertDraft(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	var req UpsertDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := pricingapp.UpsertDraftRequest{
		ProjectID:       projectID,
		Category:        catalog.Category(strings.ToUpper(req.Category)),
		Manufacturer:    req.Manufacturer,
		GroupName:       req.GroupName,
		RetailPrice:     req.RetailPrice,
		PurchasePrice:   req.PurchasePrice,
		SellingPrice:    req.SellingPrice,
		Quantity:        req.Quantity,
		MarginPercent:   req.MarginPercent,
		DiscountPercent: req.DiscountPercent,
	}

	if req.ProductID != nil {
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			h.BadRequest(c, "invalid product ID")
			return
		}
		appReq.ProductID = &productID
	}
	if req.Source != nil {
		source := pricing.PriceChangeSource(strings.ToUpper(*req.Source))
		if !source.IsValid() {
			h.BadRequest(c, "unknown price source: "+*req.Source)
			return
		}
		appReq.Source = &source
	}
	if req.GroupOption != nil {
		option := project.GroupOption(strings.ToUpper(*req.GroupOption))
		if !option.IsValid() {
			h.BadRequest(c, "unknown group option: "+*req.GroupOption)
			return
		}
		appReq.GroupOption = &option
	}

	draft, err := h.draftService.Upsert(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, draft)
}

// ListDrafts returns a project's pending draft rows, optionally narrowed
// to one category
func (h *PricingHandler) ListDrafts(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	category, ok := h.optionalCategory(c)
	if !ok {
		return
	}

	drafts, err := h.draftService.ListByProject(c.Request.Context(), projectID, category)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"drafts": drafts, "count": len(drafts)})
}

// DiscardDrafts drops a project's pending drafts, optionally only those
// of one category
func (h *PricingHandler) DiscardDrafts(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	category, ok := h.optionalCategory(c)
	if !ok {
		return
	}

	if err := h.draftService.Discard(c.Request.Context(), projectID, category); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ResolveCategory returns the resolved pricing view of one category,
// draft state layered over committed state layered over the catalog
func (h *PricingHandler) ResolveCategory(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	category, ok := h.category(c)
	if !ok {
		return
	}

	views, err := h.pricingService.ResolveCategory(c.Request.Context(), projectID, category)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"products": views, "count": len(views)})
}

// ApplyMeasurements projects quantities from measurement form values into
// draft rows of one category
func (h *PricingHandler) ApplyMeasurements(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	category, ok := h.category(c)
	if !ok {
		return
	}

	var req ApplyMeasurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.pricingService.ApplyMeasurements(c.Request.Context(), projectID, category, req.Measurements)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"products_updated": updated})
}

// SetGroupOption selects the offer inclusion state of one product group
func (h *PricingHandler) SetGroupOption(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	var req SetGroupOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category := catalog.Category(strings.ToUpper(req.Category))
	if !category.IsValid() {
		h.BadRequest(c, "unknown category: "+req.Category)
		return
	}
	option := project.GroupOption(strings.ToUpper(req.Option))
	if !option.IsValid() {
		h.BadRequest(c, "unknown group option: "+req.Option)
		return
	}

	key := catalog.GroupKey{
		Category:     category,
		Manufacturer: req.Manufacturer,
		GroupName:    req.GroupName,
	}

	if err := h.groupOptionService.SetOption(c.Request.Context(), projectID, key, option); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListGroupOptions returns the resolved inclusion state of every group of
// one manufacturer within a category
func (h *PricingHandler) ListGroupOptions(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	category, ok := h.category(c)
	if !ok {
		return
	}

	groups, err := h.groupOptionService.ListByManufacturer(c.Request.Context(), projectID, category, c.Param("manufacturer"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"groups": groups, "count": len(groups)})
}

// SaveProject commits every pending draft of a project atomically
func (h *PricingHandler) SaveProject(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	result, err := h.commitService.SaveProject(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
